package memory

import (
	"context"
	"fmt"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// WebhookEventStore implements the store.WebhookEventStore interface in memory
type WebhookEventStore struct {
	st *state
}

// Create records a processed webhook delivery
func (s *WebhookEventStore) Create(_ context.Context, event *entity.WebhookEvent) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	if _, ok := s.st.webhookEvents[event.ID]; ok {
		return fmt.Errorf("%w: webhook event %s", entity.ErrDuplicateKey, event.ID)
	}
	s.st.webhookEvents[event.ID] = *event

	return nil
}

// GetByEventID gets a processed delivery by the processor's event ID
func (s *WebhookEventStore) GetByEventID(_ context.Context, id string) (*entity.WebhookEvent, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	event, ok := s.st.webhookEvents[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &event, nil
}
