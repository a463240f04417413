package store

import (
	"context"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// EventStore defines the interface for working with the events storage.
// Events are immutable once created.
type EventStore interface {
	// Create creates a new event and assigns its identifier
	Create(ctx context.Context, event *entity.Event) error

	// GetByID gets an event by ID
	GetByID(ctx context.Context, id int64) (*entity.Event, error)

	// GetAll gets all events
	GetAll(ctx context.Context) ([]*entity.Event, error)
}

// ContactMessageStore defines the interface for working with the contact
// messages storage
type ContactMessageStore interface {
	// Create creates a new contact message, assigning its identifier and
	// creation timestamp
	Create(ctx context.Context, message *entity.ContactMessage) error

	// GetAll gets all contact messages
	GetAll(ctx context.Context) ([]*entity.ContactMessage, error)
}

// DonationStore defines the interface for working with the donations storage
type DonationStore interface {
	// Create creates a new donation and assigns its identifier
	Create(ctx context.Context, donation *entity.Donation) error

	// GetByID gets a donation by ID
	GetByID(ctx context.Context, id int64) (*entity.Donation, error)

	// GetByPaymentIntentID gets a donation by its payment intent identifier
	GetByPaymentIntentID(ctx context.Context, intentID string) (*entity.Donation, error)

	// UpdateStatus overwrites the donation status only. Returns
	// entity.ErrNotFound when no donation has the given ID.
	UpdateStatus(ctx context.Context, id int64, status entity.DonationStatus) error
}

// WebhookEventStore defines the interface for recording processed webhook
// deliveries for idempotency
type WebhookEventStore interface {
	// Create records a processed webhook delivery
	Create(ctx context.Context, event *entity.WebhookEvent) error

	// GetByEventID gets a processed delivery by the processor's event ID
	GetByEventID(ctx context.Context, id string) (*entity.WebhookEvent, error)
}
