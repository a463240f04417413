package donations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

const maxWebhookBodyBytes = 1 << 16

// WebhookHandler processes payment processor webhook deliveries. It moves
// a pending donation to its terminal status; everything else — unknown
// event types, unknown intents, redeliveries, already-terminal rows — is
// acknowledged without touching the store so the processor stops retrying.
type WebhookHandler struct {
	donationStore     store.DonationStore
	webhookEventStore store.WebhookEventStore
	verifier          dependency.WebhookVerifier
}

// NewWebhookHandler creates a new instance of WebhookHandler
func NewWebhookHandler(
	donationStore store.DonationStore,
	webhookEventStore store.WebhookEventStore,
	verifier dependency.WebhookVerifier,
) *WebhookHandler {
	return &WebhookHandler{
		donationStore:     donationStore,
		webhookEventStore: webhookEventStore,
		verifier:          verifier,
	}
}

// Handle is the gin entry point for POST /api/webhooks/stripe
func (h *WebhookHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		logger.Warn(ctx, "Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	// Verification comes before anything else; unverified payload fields
	// are never trusted. A non-2xx response makes the processor retry.
	event, err := h.verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Warn(ctx, "Webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature"})
		return
	}

	ctx = logger.ContextWithTraceID(ctx, event.ID)

	if err := h.process(ctx, event); err != nil {
		logger.Error(ctx, "Failed to process webhook event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) process(ctx context.Context, event *dependency.PaymentEvent) error {
	_, err := h.webhookEventStore.GetByEventID(ctx, event.ID)
	if err == nil {
		logger.Info(ctx, "Webhook event already processed", zap.String("event_id", event.ID))
		return nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("failed to check webhook event %s: %w", event.ID, err)
	}

	status, known := terminalStatusFor(event.Type)
	if !known {
		// Forward compatibility: never fail the webhook for an
		// unrecognized event type.
		logger.Info(ctx, "Ignoring unknown webhook event type", zap.String("type", event.Type))
		return h.saveEvent(ctx, event)
	}

	if err := h.transitionDonation(ctx, event, status); err != nil {
		return err
	}

	return h.saveEvent(ctx, event)
}

// transitionDonation applies the terminal status to the matching pending
// donation. A missing donation or an already-terminal one is a no-op.
func (h *WebhookHandler) transitionDonation(
	ctx context.Context,
	event *dependency.PaymentEvent,
	status entity.DonationStatus,
) error {
	donation, err := h.donationStore.GetByPaymentIntentID(ctx, event.PaymentIntentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			logger.Warn(ctx, "No donation for payment intent",
				zap.String("payment_intent_id", event.PaymentIntentID))
			return nil
		}
		return fmt.Errorf("failed to get donation by payment intent ID %s: %w", event.PaymentIntentID, err)
	}

	if !donation.CanTransitionTo(status) {
		logger.Info(ctx, "Donation already in terminal status",
			zap.Int64("id", donation.ID),
			zap.String("status", donation.Status.String()))
		return nil
	}

	if err := h.donationStore.UpdateStatus(ctx, donation.ID, status); err != nil {
		return fmt.Errorf("failed to update donation status: %w", err)
	}

	logger.Info(ctx, "Updated donation status",
		zap.Int64("id", donation.ID),
		zap.String("old_status", donation.Status.String()),
		zap.String("new_status", status.String()))

	return nil
}

func (h *WebhookHandler) saveEvent(ctx context.Context, event *dependency.PaymentEvent) error {
	record := entity.NewWebhookEvent(event.ID, event.Type, time.Now())
	if err := h.webhookEventStore.Create(ctx, record); err != nil {
		// A concurrent delivery may have recorded it first; the donation
		// transition is already guarded, so a duplicate key is harmless.
		if errors.Is(err, entity.ErrDuplicateKey) {
			return nil
		}
		return fmt.Errorf("failed to record webhook event: %w", err)
	}
	return nil
}

// terminalStatusFor maps a processor event type to the donation status it
// implies
func terminalStatusFor(eventType string) (entity.DonationStatus, bool) {
	switch eventType {
	case dependency.PaymentEventSucceeded:
		return entity.DonationStatusSucceeded, true
	case dependency.PaymentEventFailed:
		return entity.DonationStatusFailed, true
	default:
		return "", false
	}
}
