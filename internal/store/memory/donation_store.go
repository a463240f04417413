package memory

import (
	"context"
	"time"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// DonationStore implements the store.DonationStore interface in memory
type DonationStore struct {
	st *state
}

// Create creates a new donation
func (s *DonationStore) Create(_ context.Context, donation *entity.Donation) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	donation.ID = s.st.nextDonationID
	s.st.nextDonationID++

	now := time.Now()
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = now
	}
	donation.UpdatedAt = now
	s.st.donations[donation.ID] = *donation

	return nil
}

// GetByID gets a donation by ID
func (s *DonationStore) GetByID(_ context.Context, id int64) (*entity.Donation, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	donation, ok := s.st.donations[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &donation, nil
}

// GetByPaymentIntentID gets a donation by its payment intent identifier
func (s *DonationStore) GetByPaymentIntentID(_ context.Context, intentID string) (*entity.Donation, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	for id := range s.st.donations {
		if s.st.donations[id].PaymentIntentID == intentID {
			donation := s.st.donations[id]
			return &donation, nil
		}
	}

	return nil, entity.ErrNotFound
}

// UpdateStatus overwrites the donation status only
func (s *DonationStore) UpdateStatus(_ context.Context, id int64, status entity.DonationStatus) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	donation, ok := s.st.donations[id]
	if !ok {
		return entity.ErrNotFound
	}

	donation.Status = status
	donation.UpdatedAt = time.Now()
	s.st.donations[id] = donation

	return nil
}
