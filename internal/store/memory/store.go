// Package memory provides an ephemeral in-process store backend. Data is
// lost on restart; behavior matches the postgres backend otherwise.
package memory

import (
	"sort"
	"sync"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// state holds all tables behind a single mutex. Identifier counters only
// ever increase, so IDs are never reused even under concurrent creates.
type state struct {
	mu sync.Mutex

	events        map[int64]entity.Event
	contacts      map[int64]entity.ContactMessage
	donations     map[int64]entity.Donation
	webhookEvents map[string]entity.WebhookEvent

	nextEventID    int64
	nextContactID  int64
	nextDonationID int64
}

// Store implements all data stores in memory
type Store struct {
	eventStore        *EventStore
	contactStore      *ContactMessageStore
	donationStore     *DonationStore
	webhookEventStore *WebhookEventStore
}

// NewStore creates a new instance of Store
func NewStore() *Store {
	st := &state{
		events:         make(map[int64]entity.Event),
		contacts:       make(map[int64]entity.ContactMessage),
		donations:      make(map[int64]entity.Donation),
		webhookEvents:  make(map[string]entity.WebhookEvent),
		nextEventID:    1,
		nextContactID:  1,
		nextDonationID: 1,
	}

	return &Store{
		eventStore:        &EventStore{st: st},
		contactStore:      &ContactMessageStore{st: st},
		donationStore:     &DonationStore{st: st},
		webhookEventStore: &WebhookEventStore{st: st},
	}
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

// sortByID orders a result set by identifier so listings are stable
// across calls within a single process lifetime.
func sortByID[T any](items []*T, id func(*T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
