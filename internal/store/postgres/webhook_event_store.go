package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// WebhookEventStore implements the store.WebhookEventStore interface for PostgreSQL
type WebhookEventStore struct {
	db *DB
}

// NewWebhookEventStore creates a new instance of WebhookEventStore
func NewWebhookEventStore(db *DB) *WebhookEventStore {
	return &WebhookEventStore{db: db}
}

// Create records a processed webhook delivery
func (s *WebhookEventStore) Create(ctx context.Context, event *entity.WebhookEvent) error {
	const query = `
		INSERT INTO webhook_events (id, type, created_at)
		VALUES ($1, $2, $3);
	`

	_, err := s.db.Primary(ctx).ExecContext(ctx, query, event.ID, event.Type, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create webhook event: %w", store.HandlePGError(err))
	}

	return nil
}

// GetByEventID gets a processed delivery by the processor's event ID
func (s *WebhookEventStore) GetByEventID(ctx context.Context, id string) (*entity.WebhookEvent, error) {
	const query = `SELECT * FROM webhook_events WHERE id = $1 LIMIT 1;`

	var event entity.WebhookEvent
	err := s.db.Replica().GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook event by ID: %w", err)
	}

	return &event, nil
}
