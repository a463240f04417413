package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// ContactMessageStore implements the store.ContactMessageStore interface for PostgreSQL
type ContactMessageStore struct {
	db *DB
}

// NewContactMessageStore creates a new instance of ContactMessageStore
func NewContactMessageStore(db *DB) *ContactMessageStore {
	return &ContactMessageStore{db: db}
}

// Create creates a new contact message
func (s *ContactMessageStore) Create(ctx context.Context, message *entity.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	err := s.db.Primary(ctx).QueryRowxContext(
		ctx,
		query,
		message.Name,
		message.Email,
		message.Message,
		message.CreatedAt,
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// GetAll gets all contact messages ordered by ID
func (s *ContactMessageStore) GetAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	const query = `SELECT * FROM contact_messages ORDER BY id;`

	messages := make([]*entity.ContactMessage, 0)
	err := s.db.Replica().SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}

	return messages, nil
}
