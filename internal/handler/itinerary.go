package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// CreateItinerary handles POST /api/itineraries.
func (h *Handler) CreateItinerary(c *gin.Context) {
	var in service.CreateItineraryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	in.UserID = userID(c)

	it, err := h.Itineraries.Create(in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": it.ID})
}

// GetItinerary handles GET /api/itineraries/:id, returning the document with
// all three child collections.
func (h *Handler) GetItinerary(c *gin.Context) {
	detail, err := h.Itineraries.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListUserItineraries handles GET /api/users/:id/itineraries.
func (h *Handler) ListUserItineraries(c *gin.Context) {
	itineraries, err := h.Itineraries.ListForUser(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itineraries)
}
