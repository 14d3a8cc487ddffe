package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// CreatePackingItem handles POST /api/itineraries/:id/packing.
func (h *Handler) CreatePackingItem(c *gin.Context) {
	var in service.PackingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Packing.Create(c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdatePackingItem handles PUT /api/itineraries/:id/packing/:itemId.
func (h *Handler) UpdatePackingItem(c *gin.Context) {
	var in service.PackingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Packing.Update(c.Param("id"), c.Param("itemId"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeletePackingItem handles DELETE /api/itineraries/:id/packing/:itemId.
func (h *Handler) DeletePackingItem(c *gin.Context) {
	if err := h.Packing.Delete(c.Param("id"), c.Param("itemId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
