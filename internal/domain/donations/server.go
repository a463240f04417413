package donations

import (
	"github.com/gin-gonic/gin"

	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// Server exposes the donation workflow over HTTP
type Server struct {
	createIntentHandler *CreateIntentHandler
	bankTransferHandler *BankTransferHandler
	webhookHandler      *WebhookHandler
}

// NewServer creates a new instance of Server
func NewServer(
	donationStore store.DonationStore,
	webhookEventStore store.WebhookEventStore,
	paymentClient dependency.PaymentIntentClient,
	verifier dependency.WebhookVerifier,
) *Server {
	return &Server{
		createIntentHandler: NewCreateIntentHandler(donationStore, paymentClient),
		bankTransferHandler: NewBankTransferHandler(donationStore),
		webhookHandler:      NewWebhookHandler(donationStore, webhookEventStore, verifier),
	}
}

// Register mounts the donation routes onto the API group
func (s *Server) Register(api *gin.RouterGroup) {
	api.POST("/donations", s.bankTransferHandler.Handle)
	api.POST("/donations/create-intent", s.createIntentHandler.Handle)
	api.POST("/webhooks/stripe", s.webhookHandler.Handle)
}
