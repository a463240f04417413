package postgres

import (
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/we3pr0/AbundantLifeChurch/internal/config"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// Store implements all data stores
type Store struct {
	db                *DB
	eventStore        store.EventStore
	contactStore      store.ContactMessageStore
	donationStore     store.DonationStore
	webhookEventStore store.WebhookEventStore
}

// NewStore creates a new instance of Store
func NewStore(cfg config.Database) (*Store, error) {
	db, err := NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return &Store{
		db:                db,
		eventStore:        NewEventStore(db),
		contactStore:      NewContactMessageStore(db),
		donationStore:     NewDonationStore(db),
		webhookEventStore: NewWebhookEventStore(db),
	}, nil
}

// EventStore returns the EventStore implementation
func (s *Store) EventStore() store.EventStore {
	return s.eventStore
}

// ContactMessageStore returns the ContactMessageStore implementation
func (s *Store) ContactMessageStore() store.ContactMessageStore {
	return s.contactStore
}

// DonationStore returns the DonationStore implementation
func (s *Store) DonationStore() store.DonationStore {
	return s.donationStore
}

// WebhookEventStore returns the WebhookEventStore implementation
func (s *Store) WebhookEventStore() store.WebhookEventStore {
	return s.webhookEventStore
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
