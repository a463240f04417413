package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// EventStore implements the store.EventStore interface for PostgreSQL
type EventStore struct {
	db *DB
}

// NewEventStore creates a new instance of EventStore
func NewEventStore(db *DB) *EventStore {
	return &EventStore{db: db}
}

// Create creates a new event
func (s *EventStore) Create(ctx context.Context, event *entity.Event) error {
	const query = `
		INSERT INTO events (title, description, date, location, is_recurring)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	err := s.db.Primary(ctx).QueryRowxContext(
		ctx,
		query,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.IsRecurring,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// GetByID gets an event by ID
func (s *EventStore) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	const query = `SELECT * FROM events WHERE id = $1;`

	var event entity.Event
	err := s.db.Replica().GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	return &event, nil
}

// GetAll gets all events ordered by ID
func (s *EventStore) GetAll(ctx context.Context) ([]*entity.Event, error) {
	const query = `SELECT * FROM events ORDER BY id;`

	events := make([]*entity.Event, 0)
	err := s.db.Replica().SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}
