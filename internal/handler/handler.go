package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soranjiro/AxI-itinerary/internal/apperror"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

// Handler bundles the service dependencies behind the HTTP surface.
type Handler struct {
	Itineraries *service.ItineraryService
	Timeline    *service.TimelineService
	Packing     *service.PackingService
	Budget      *service.BudgetService
	Auth        *service.AuthService
	Chat        *service.ChatService

	logger *zap.Logger
}

// NewHandler creates a Handler with its service dependencies injected.
func NewHandler(is *service.ItineraryService, ts *service.TimelineService, ps *service.PackingService,
	bs *service.BudgetService, as *service.AuthService, cs *service.ChatService, logger *zap.Logger) *Handler {
	return &Handler{
		Itineraries: is,
		Timeline:    ts,
		Packing:     ps,
		Budget:      bs,
		Auth:        as,
		Chat:        cs,
		logger:      logger,
	}
}

// RegisterRoutes mounts the API surface on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(h.currentUser())
	{
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		api.POST("/itineraries", h.CreateItinerary)
		api.GET("/itineraries/:id", h.GetItinerary)

		api.POST("/itineraries/:id/timeline", h.CreateTimelineItem)
		api.PUT("/itineraries/:id/timeline/reorder", h.ReorderTimeline)
		api.PUT("/itineraries/:id/timeline/:itemId", h.UpdateTimelineItem)
		api.DELETE("/itineraries/:id/timeline/:itemId", h.DeleteTimelineItem)

		api.POST("/itineraries/:id/packing", h.CreatePackingItem)
		api.PUT("/itineraries/:id/packing/:itemId", h.UpdatePackingItem)
		api.DELETE("/itineraries/:id/packing/:itemId", h.DeletePackingItem)

		api.POST("/itineraries/:id/budget", h.CreateBudgetItem)
		api.PUT("/itineraries/:id/budget/:itemId", h.UpdateBudgetItem)
		api.DELETE("/itineraries/:id/budget/:itemId", h.DeleteBudgetItem)

		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.RequireAuth, h.UpdateUser)
		api.GET("/users/:id/itineraries", h.ListUserItineraries)

		api.POST("/chat", h.ChatMessage)
	}
}

// respondError maps service errors to their HTTP status and a JSON body.
func (h *Handler) respondError(c *gin.Context, err error) {
	status, msg := apperror.StatusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
