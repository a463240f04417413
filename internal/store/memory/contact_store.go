package memory

import (
	"context"
	"time"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// ContactMessageStore implements the store.ContactMessageStore interface in memory
type ContactMessageStore struct {
	st *state
}

// Create creates a new contact message
func (s *ContactMessageStore) Create(_ context.Context, message *entity.ContactMessage) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	message.ID = s.st.nextContactID
	s.st.nextContactID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	s.st.contacts[message.ID] = *message

	return nil
}

// GetAll gets all contact messages ordered by ID
func (s *ContactMessageStore) GetAll(_ context.Context) ([]*entity.ContactMessage, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	messages := make([]*entity.ContactMessage, 0, len(s.st.contacts))
	for id := range s.st.contacts {
		message := s.st.contacts[id]
		messages = append(messages, &message)
	}
	sortByID(messages, func(m *entity.ContactMessage) int64 { return m.ID })

	return messages, nil
}
