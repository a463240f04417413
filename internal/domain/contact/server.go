package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// CreateContactRequest is the contact form payload
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Server exposes the contact form over HTTP
type Server struct {
	contactStore store.ContactMessageStore
}

// NewServer creates a new instance of Server
func NewServer(contactStore store.ContactMessageStore) *Server {
	return &Server{contactStore: contactStore}
}

// Register mounts the contact routes onto the API group
func (s *Server) Register(api *gin.RouterGroup) {
	api.POST("/contact", s.createMessage)
}

func (s *Server) createMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "Rejected contact payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact data"})
		return
	}

	message := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactStore.Create(ctx, message); err != nil {
		logger.Error(ctx, "Failed to create contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating contact message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}
