package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// DonationStore implements the store.DonationStore interface for PostgreSQL
type DonationStore struct {
	db *DB
}

// NewDonationStore creates a new instance of DonationStore
func NewDonationStore(db *DB) *DonationStore {
	return &DonationStore{db: db}
}

// Create creates a new donation
func (s *DonationStore) Create(ctx context.Context, donation *entity.Donation) error {
	const query = `
		INSERT INTO donations (
			amount, name, email, message, payment_intent_id, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id;
	`

	now := time.Now()
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = now
	}
	donation.UpdatedAt = now

	err := s.db.Primary(ctx).QueryRowxContext(
		ctx,
		query,
		donation.Amount,
		donation.Name,
		donation.Email,
		donation.Message,
		donation.PaymentIntentID,
		donation.Status,
		donation.CreatedAt,
		donation.UpdatedAt,
	).Scan(&donation.ID)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", store.HandlePGError(err))
	}

	return nil
}

// GetByID gets a donation by ID
func (s *DonationStore) GetByID(ctx context.Context, id int64) (*entity.Donation, error) {
	const query = `SELECT * FROM donations WHERE id = $1;`

	var donation entity.Donation
	err := s.db.Replica().GetContext(ctx, &donation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation by ID: %w", err)
	}

	return &donation, nil
}

// GetByPaymentIntentID gets a donation by its payment intent identifier
func (s *DonationStore) GetByPaymentIntentID(ctx context.Context, intentID string) (*entity.Donation, error) {
	const query = `SELECT * FROM donations WHERE payment_intent_id = $1;`

	var donation entity.Donation
	err := s.db.Replica().GetContext(ctx, &donation, query, intentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation by payment intent ID: %w", err)
	}

	return &donation, nil
}

// UpdateStatus overwrites the donation status only
func (s *DonationStore) UpdateStatus(ctx context.Context, id int64, status entity.DonationStatus) error {
	const query = `
		UPDATE donations SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`

	res, err := s.db.Primary(ctx).ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update donation status: %w", store.HandlePGError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}
