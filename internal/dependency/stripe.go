package dependency

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"

	"github.com/we3pr0/AbundantLifeChurch/internal/config"
	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// PaymentIntentClient represents an interface for interacting with the
// payment processor's intent API
type PaymentIntentClient interface {
	CreateIntent(ctx context.Context, donation *entity.Donation) (*IntentResponse, error)
}

// IntentResponse represents a response from the payment processor for a
// created intent
type IntentResponse struct {
	IntentID     string
	ClientSecret string
}

// stripePaymentIntentClient implements the PaymentIntentClient interface
type stripePaymentIntentClient struct {
	api *stripeclient.API
}

// NewStripePaymentIntentClient creates a new instance of PaymentIntentClient
func NewStripePaymentIntentClient(cfg config.Stripe) PaymentIntentClient {
	api := &stripeclient.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripePaymentIntentClient{api: api}
}

// CreateIntent creates a payment intent for the donation. Stored amounts
// are whole currency units; the processor expects minor units.
func (c *stripePaymentIntentClient) CreateIntent(ctx context.Context, donation *entity.Donation) (*IntentResponse, error) {
	minorUnits := donation.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("donor_name", donation.Name)
	params.AddMetadata("donor_email", donation.Email)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create payment intent: %w", entity.ErrPaymentProvider, err)
	}

	return &IntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
