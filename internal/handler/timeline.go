package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// CreateTimelineItem handles POST /api/itineraries/:id/timeline.
func (h *Handler) CreateTimelineItem(c *gin.Context) {
	var in service.TimelineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Timeline.Create(c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateTimelineItem handles PUT /api/itineraries/:id/timeline/:itemId.
func (h *Handler) UpdateTimelineItem(c *gin.Context) {
	var in service.TimelineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	item, err := h.Timeline.Update(c.Param("id"), c.Param("itemId"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteTimelineItem handles DELETE /api/itineraries/:id/timeline/:itemId.
func (h *Handler) DeleteTimelineItem(c *gin.Context) {
	if err := h.Timeline.Delete(c.Param("id"), c.Param("itemId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderTimeline handles PUT /api/itineraries/:id/timeline/reorder with the
// full item id sequence in display order.
func (h *Handler) ReorderTimeline(c *gin.Context) {
	var body struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	if err := h.Timeline.Reorder(c.Param("id"), body.ItemIDs); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
