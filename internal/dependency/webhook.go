package dependency

import (
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// Event types delivered by the payment processor. Anything else is
// acknowledged and ignored.
const (
	PaymentEventSucceeded = "payment_intent.succeeded"
	PaymentEventFailed    = "payment_intent.payment_failed"
)

// PaymentEvent is a webhook notification that passed signature
// verification. Fields from unverified payloads are never exposed.
type PaymentEvent struct {
	ID              string
	Type            string
	PaymentIntentID string
}

// WebhookVerifier verifies the authenticity of a webhook payload before
// any of its content is trusted
type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (*PaymentEvent, error)
}

// stripeWebhookVerifier implements the WebhookVerifier interface using the
// processor's shared signing secret
type stripeWebhookVerifier struct {
	signingSecret string
}

// NewStripeWebhookVerifier creates a new instance of WebhookVerifier
func NewStripeWebhookVerifier(signingSecret string) WebhookVerifier {
	return &stripeWebhookVerifier{signingSecret: signingSecret}
}

// Verify checks the payload signature and returns the parsed event. Fails
// closed with entity.ErrInvalidSignature so the caller responds non-2xx
// and the processor retries delivery.
func (v *stripeWebhookVerifier) Verify(payload []byte, signatureHeader string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.signingSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidSignature, err)
	}

	out := &PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if len(event.Data.Raw) > 0 {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
			out.PaymentIntentID = intent.ID
		}
	}

	return out, nil
}
