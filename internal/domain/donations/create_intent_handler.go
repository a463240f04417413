package donations

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// DonationRequest is the donor-submitted payload shared by the card and
// bank-transfer paths
type DonationRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount"`
}

// Validate checks the constraints the binding tags cannot express: the
// amount must be a positive whole number of currency units.
func (r *DonationRequest) Validate() error {
	if r.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", entity.ErrValidation)
	}
	if !r.Amount.IsInteger() {
		return fmt.Errorf("%w: amount must be a whole number", entity.ErrValidation)
	}
	return nil
}

// CreateIntentResponse carries the processor's client-side confirmation secret
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntentHandler handles the card donation path: it creates a payment
// intent with the processor and persists a pending donation record.
type CreateIntentHandler struct {
	donationStore store.DonationStore
	paymentClient dependency.PaymentIntentClient
}

// NewCreateIntentHandler creates a new instance of CreateIntentHandler
func NewCreateIntentHandler(
	donationStore store.DonationStore,
	paymentClient dependency.PaymentIntentClient,
) *CreateIntentHandler {
	return &CreateIntentHandler{
		donationStore: donationStore,
		paymentClient: paymentClient,
	}
}

// Handle is the gin entry point for POST /api/donations/create-intent
func (h *CreateIntentHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "Rejected donation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid donation data"})
		return
	}

	resp, err := h.handle(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrValidation):
			logger.Warn(ctx, "Rejected donation payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid donation data"})
		default:
			logger.Error(ctx, "Failed to create payment intent", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handle validates the request, creates the processor intent, and persists
// the pending donation. The row is only written after the processor call
// succeeds, so a processor failure leaves no partial record, and the
// client secret is only returned after the row is committed.
func (h *CreateIntentHandler) handle(ctx context.Context, req *DonationRequest) (*CreateIntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		Amount:  req.Amount,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  entity.DonationStatusPending,
	}

	intent, err := h.paymentClient.CreateIntent(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("failed to create intent at processor: %w", err)
	}

	donation.PaymentIntentID = intent.IntentID
	if err := h.donationStore.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	logger.Info(ctx, "Created pending donation",
		zap.Int64("id", donation.ID),
		zap.String("amount", donation.Amount.String()),
		zap.String("payment_intent_id", donation.PaymentIntentID))

	return &CreateIntentResponse{ClientSecret: intent.ClientSecret}, nil
}
