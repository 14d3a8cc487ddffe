package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// ChatMessage handles POST /api/chat.
func (h *Handler) ChatMessage(c *gin.Context) {
	var in service.ChatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.respondError(c, apperror.BadRequest("Invalid request body"))
		return
	}
	reply, err := h.Chat.Chat(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
