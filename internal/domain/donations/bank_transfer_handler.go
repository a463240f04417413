package donations

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// BankTransferHandler records donations made by manual bank transfer. No
// processor call happens on this path; the record carries the sentinel
// payment intent ID and stays pending, since no confirmation channel
// exists for manual transfers.
type BankTransferHandler struct {
	donationStore store.DonationStore
}

// NewBankTransferHandler creates a new instance of BankTransferHandler
func NewBankTransferHandler(donationStore store.DonationStore) *BankTransferHandler {
	return &BankTransferHandler{donationStore: donationStore}
}

// Handle is the gin entry point for POST /api/donations
func (h *BankTransferHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "Rejected donation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid donation data"})
		return
	}

	donation, err := h.handle(ctx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			logger.Warn(ctx, "Rejected donation payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid donation data"})
			return
		}
		logger.Error(ctx, "Failed to create donation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating donation"})
		return
	}

	c.JSON(http.StatusCreated, donation)
}

func (h *BankTransferHandler) handle(ctx context.Context, req *DonationRequest) (*entity.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		Amount:          req.Amount,
		Name:            req.Name,
		Email:           req.Email,
		Message:         req.Message,
		PaymentIntentID: entity.ManualBankTransferIntentID,
		Status:          entity.DonationStatusPending,
	}

	if err := h.donationStore.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	logger.Info(ctx, "Recorded bank transfer donation",
		zap.Int64("id", donation.ID),
		zap.String("amount", donation.Amount.String()))

	return donation, nil
}
