package events

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// CreateEventRequest is the payload for creating an event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	IsRecurring bool      `json:"isRecurring"`
}

// Server exposes the events listing over HTTP
type Server struct {
	eventStore store.EventStore
}

// NewServer creates a new instance of Server
func NewServer(eventStore store.EventStore) *Server {
	return &Server{eventStore: eventStore}
}

// Register mounts the event routes onto the API group
func (s *Server) Register(api *gin.RouterGroup) {
	api.GET("/events", s.getEvents)
	api.GET("/events/:id", s.getEvent)
	api.POST("/events", s.createEvent)
}

func (s *Server) getEvents(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := s.eventStore.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to get events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *Server) getEvent(c *gin.Context) {
	ctx := c.Request.Context()

	// A non-numeric ID cannot match any event.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	event, err := s.eventStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		logger.Error(ctx, "Failed to get event", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (s *Server) createEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "Rejected event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event data"})
		return
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		IsRecurring: req.IsRecurring,
	}
	if err := s.eventStore.Create(ctx, event); err != nil {
		logger.Error(ctx, "Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}
