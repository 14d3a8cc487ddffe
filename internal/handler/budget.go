package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// CreateBudgetItem handles POST /api/itineraries/:id/budget.
func (h *Handler) CreateBudgetItem(c *gin.Context) {
	var in service.BudgetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Budget.Create(c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateBudgetItem handles PUT /api/itineraries/:id/budget/:itemId.
func (h *Handler) UpdateBudgetItem(c *gin.Context) {
	var in service.BudgetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Budget.Update(c.Param("id"), c.Param("itemId"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteBudgetItem handles DELETE /api/itineraries/:id/budget/:itemId.
func (h *Handler) DeleteBudgetItem(c *gin.Context) {
	if err := h.Budget.Delete(c.Param("id"), c.Param("itemId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
