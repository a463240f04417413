package memory

import (
	"context"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// EventStore implements the store.EventStore interface in memory
type EventStore struct {
	st *state
}

// Create creates a new event
func (s *EventStore) Create(_ context.Context, event *entity.Event) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	event.ID = s.st.nextEventID
	s.st.nextEventID++
	s.st.events[event.ID] = *event

	return nil
}

// GetByID gets an event by ID
func (s *EventStore) GetByID(_ context.Context, id int64) (*entity.Event, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	event, ok := s.st.events[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &event, nil
}

// GetAll gets all events ordered by ID
func (s *EventStore) GetAll(_ context.Context) ([]*entity.Event, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	events := make([]*entity.Event, 0, len(s.st.events))
	for id := range s.st.events {
		event := s.st.events[id]
		events = append(events, &event)
	}
	sortByID(events, func(e *entity.Event) int64 { return e.ID })

	return events, nil
}
