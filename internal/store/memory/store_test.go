package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

func TestEventStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewStore().EventStore()

	event := &entity.Event{
		Title:       "Sunday Service",
		Description: "Weekly worship service",
		Date:        time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC),
		Location:    "Main Sanctuary",
		IsRecurring: true,
	}
	require.NoError(t, st.Create(ctx, event))
	require.NotZero(t, event.ID)

	got, err := st.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Title, got.Title)
	assert.True(t, got.IsRecurring)

	_, err = st.GetByID(ctx, 999)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEventStore_GetAll(t *testing.T) {
	ctx := context.Background()
	st := NewStore().EventStore()

	all, err := st.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)

	for _, title := range []string{"Bible Study", "Youth Night", "Prayer Meeting"} {
		require.NoError(t, st.Create(ctx, &entity.Event{Title: title, Date: time.Now()}))
	}

	all, err = st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bible Study", all[0].Title)
	assert.Equal(t, "Prayer Meeting", all[2].Title)
}

func TestContactMessageStore_Create(t *testing.T) {
	ctx := context.Background()
	st := NewStore().ContactMessageStore()

	message := &entity.ContactMessage{
		Name:    "Ada",
		Email:   "ada@x.com",
		Message: "What time is the service?",
	}
	require.NoError(t, st.Create(ctx, message))
	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())

	all, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ada@x.com", all[0].Email)
}

func TestDonationStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewStore().DonationStore()

	donation := &entity.Donation{
		Amount:          decimal.NewFromInt(25),
		Name:            "Ada",
		Email:           "ada@x.com",
		PaymentIntentID: "pi_123",
		Status:          entity.DonationStatusPending,
	}
	require.NoError(t, st.Create(ctx, donation))
	require.NotZero(t, donation.ID)

	byID, err := st.GetByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusPending, byID.Status)

	byIntent, err := st.GetByPaymentIntentID(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, donation.ID, byIntent.ID)

	_, err = st.GetByPaymentIntentID(ctx, "pi_missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDonationStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	st := NewStore().DonationStore()

	donation := &entity.Donation{
		Amount: decimal.NewFromInt(50),
		Name:   "Grace",
		Email:  "grace@x.com",
		Status: entity.DonationStatusPending,
	}
	require.NoError(t, st.Create(ctx, donation))

	require.NoError(t, st.UpdateStatus(ctx, donation.ID, entity.DonationStatusSucceeded))

	got, err := st.GetByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationStatusSucceeded, got.Status)
}

// Applying the same terminal status twice leaves the row unchanged.
func TestDonationStore_UpdateStatusIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewStore().DonationStore()

	donation := &entity.Donation{
		Amount: decimal.NewFromInt(100),
		Name:   "Grace",
		Email:  "grace@x.com",
		Status: entity.DonationStatusPending,
	}
	require.NoError(t, st.Create(ctx, donation))

	require.NoError(t, st.UpdateStatus(ctx, donation.ID, entity.DonationStatusFailed))
	first, err := st.GetByID(ctx, donation.ID)
	require.NoError(t, err)

	require.NoError(t, st.UpdateStatus(ctx, donation.ID, entity.DonationStatusFailed))
	second, err := st.GetByID(ctx, donation.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Amount.String(), second.Amount.String())
	assert.Equal(t, first.PaymentIntentID, second.PaymentIntentID)
}

func TestDonationStore_UpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	st := NewStore().DonationStore()

	err := st.UpdateStatus(ctx, 42, entity.DonationStatusSucceeded)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

// Concurrent creates must never collide on identifier assignment.
func TestDonationStore_ConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	st := NewStore().DonationStore()

	const workers = 50

	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			donation := &entity.Donation{
				Amount: decimal.NewFromInt(10),
				Name:   "Concurrent",
				Email:  "c@x.com",
				Status: entity.DonationStatusPending,
			}
			if err := st.Create(ctx, donation); err == nil {
				ids <- donation.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestWebhookEventStore_Dedup(t *testing.T) {
	ctx := context.Background()
	st := NewStore().WebhookEventStore()

	_, err := st.GetByEventID(ctx, "evt_1")
	require.ErrorIs(t, err, entity.ErrNotFound)

	event := entity.NewWebhookEvent("evt_1", "payment_intent.succeeded", time.Now())
	require.NoError(t, st.Create(ctx, event))

	got, err := st.GetByEventID(ctx, "evt_1")
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.succeeded", got.Type)

	err = st.Create(ctx, event)
	assert.ErrorIs(t, err, entity.ErrDuplicateKey)
}
