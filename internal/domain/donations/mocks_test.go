package donations

import (
	"context"

	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// DonationStoreMock is a configurable mock implementing store.DonationStore
type DonationStoreMock struct {
	CreateFunc               func(ctx context.Context, donation *entity.Donation) error
	GetByIDFunc              func(ctx context.Context, id int64) (*entity.Donation, error)
	GetByPaymentIntentIDFunc func(ctx context.Context, intentID string) (*entity.Donation, error)
	UpdateStatusFunc         func(ctx context.Context, id int64, status entity.DonationStatus) error

	createCalls       int
	updateStatusCalls int
}

func (m *DonationStoreMock) Create(ctx context.Context, donation *entity.Donation) error {
	m.createCalls++
	return m.CreateFunc(ctx, donation)
}

func (m *DonationStoreMock) GetByID(ctx context.Context, id int64) (*entity.Donation, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *DonationStoreMock) GetByPaymentIntentID(ctx context.Context, intentID string) (*entity.Donation, error) {
	return m.GetByPaymentIntentIDFunc(ctx, intentID)
}

func (m *DonationStoreMock) UpdateStatus(ctx context.Context, id int64, status entity.DonationStatus) error {
	m.updateStatusCalls++
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *DonationStoreMock) CreateCalls() int       { return m.createCalls }
func (m *DonationStoreMock) UpdateStatusCalls() int { return m.updateStatusCalls }

// WebhookEventStoreMock is a configurable mock implementing store.WebhookEventStore
type WebhookEventStoreMock struct {
	CreateFunc       func(ctx context.Context, event *entity.WebhookEvent) error
	GetByEventIDFunc func(ctx context.Context, id string) (*entity.WebhookEvent, error)

	createCalls int
}

func (m *WebhookEventStoreMock) Create(ctx context.Context, event *entity.WebhookEvent) error {
	m.createCalls++
	return m.CreateFunc(ctx, event)
}

func (m *WebhookEventStoreMock) GetByEventID(ctx context.Context, id string) (*entity.WebhookEvent, error) {
	return m.GetByEventIDFunc(ctx, id)
}

func (m *WebhookEventStoreMock) CreateCalls() int { return m.createCalls }

// PaymentIntentClientMock is a configurable mock implementing dependency.PaymentIntentClient
type PaymentIntentClientMock struct {
	CreateIntentFunc func(ctx context.Context, donation *entity.Donation) (*dependency.IntentResponse, error)

	createIntentCalls int
}

func (m *PaymentIntentClientMock) CreateIntent(ctx context.Context, donation *entity.Donation) (*dependency.IntentResponse, error) {
	m.createIntentCalls++
	return m.CreateIntentFunc(ctx, donation)
}

func (m *PaymentIntentClientMock) CreateIntentCalls() int { return m.createIntentCalls }

// WebhookVerifierMock is a configurable mock implementing dependency.WebhookVerifier
type WebhookVerifierMock struct {
	VerifyFunc func(payload []byte, signatureHeader string) (*dependency.PaymentEvent, error)
}

func (m *WebhookVerifierMock) Verify(payload []byte, signatureHeader string) (*dependency.PaymentEvent, error) {
	return m.VerifyFunc(payload, signatureHeader)
}
