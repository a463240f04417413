package donations

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/entity"
)

// intentTestData holds all data and state for each test case
type intentTestData struct {
	ctx context.Context
	t   *testing.T

	handler *CreateIntentHandler

	donationStore *DonationStoreMock
	paymentClient *PaymentIntentClientMock

	req     *DonationRequest
	resp    *CreateIntentResponse
	created *entity.Donation
	err     error
}

// intentTestCase defines a test scenario in given/when/then format
type intentTestCase struct {
	name  string
	given func(td *intentTestData)
	when  func(td *intentTestData)
	then  func(td *intentTestData)
}

func newIntentTestData(t *testing.T) *intentTestData {
	donationStore := &DonationStoreMock{}
	paymentClient := &PaymentIntentClientMock{}

	return &intentTestData{
		ctx:           context.Background(),
		t:             t,
		handler:       NewCreateIntentHandler(donationStore, paymentClient),
		donationStore: donationStore,
		paymentClient: paymentClient,
		req: &DonationRequest{
			Name:   "Ada",
			Email:  "ada@x.com",
			Amount: decimal.NewFromInt(25),
		},
	}
}

func TestCreateIntentHandler_handle(t *testing.T) {
	testCases := []intentTestCase{
		{
			name: "valid donation creates intent and pending row",
			given: func(td *intentTestData) {
				td.paymentClient.CreateIntentFunc = func(_ context.Context, _ *entity.Donation) (*dependency.IntentResponse, error) {
					return &dependency.IntentResponse{IntentID: "pi_123", ClientSecret: "pi_123_secret"}, nil
				}
				td.donationStore.CreateFunc = func(_ context.Context, donation *entity.Donation) error {
					donation.ID = 1
					td.created = donation
					return nil
				}
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.NoError(td.t, td.err)
				require.NotNil(td.t, td.resp)
				assert.Equal(td.t, "pi_123_secret", td.resp.ClientSecret)

				require.NotNil(td.t, td.created)
				assert.Equal(td.t, entity.DonationStatusPending, td.created.Status)
				assert.Equal(td.t, "pi_123", td.created.PaymentIntentID)
				assert.NotEmpty(td.t, td.created.PaymentIntentID)
				assert.True(td.t, decimal.NewFromInt(25).Equal(td.created.Amount))
				assert.Equal(td.t, 1, td.donationStore.CreateCalls())
			},
		},
		{
			name: "zero amount fails validation before any call",
			given: func(td *intentTestData) {
				td.req.Amount = decimal.Zero
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.ErrorIs(td.t, td.err, entity.ErrValidation)
				assert.Equal(td.t, 0, td.paymentClient.CreateIntentCalls())
				assert.Equal(td.t, 0, td.donationStore.CreateCalls())
			},
		},
		{
			name: "negative amount fails validation",
			given: func(td *intentTestData) {
				td.req.Amount = decimal.NewFromInt(-5)
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.ErrorIs(td.t, td.err, entity.ErrValidation)
				assert.Equal(td.t, 0, td.paymentClient.CreateIntentCalls())
			},
		},
		{
			name: "fractional amount fails validation",
			given: func(td *intentTestData) {
				td.req.Amount = decimal.NewFromFloat(25.50)
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.ErrorIs(td.t, td.err, entity.ErrValidation)
				assert.Equal(td.t, 0, td.paymentClient.CreateIntentCalls())
			},
		},
		{
			name: "processor failure leaves no donation row",
			given: func(td *intentTestData) {
				td.paymentClient.CreateIntentFunc = func(_ context.Context, _ *entity.Donation) (*dependency.IntentResponse, error) {
					return nil, errors.New("stripe unreachable")
				}
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.Error(td.t, td.err)
				assert.NotErrorIs(td.t, td.err, entity.ErrValidation)
				assert.Equal(td.t, 0, td.donationStore.CreateCalls())
			},
		},
		{
			name: "store failure surfaces as internal error",
			given: func(td *intentTestData) {
				td.paymentClient.CreateIntentFunc = func(_ context.Context, _ *entity.Donation) (*dependency.IntentResponse, error) {
					return &dependency.IntentResponse{IntentID: "pi_456", ClientSecret: "pi_456_secret"}, nil
				}
				td.donationStore.CreateFunc = func(_ context.Context, _ *entity.Donation) error {
					return errors.New("connection reset")
				}
			},
			when: func(td *intentTestData) {
				td.resp, td.err = td.handler.handle(td.ctx, td.req)
			},
			then: func(td *intentTestData) {
				require.Error(td.t, td.err)
				assert.Nil(td.t, td.resp)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			td := newIntentTestData(t)
			tc.given(td)
			tc.when(td)
			tc.then(td)
		})
	}
}

func TestDonationRequest_Validate(t *testing.T) {
	valid := &DonationRequest{Name: "Ada", Email: "ada@x.com", Amount: decimal.NewFromInt(10)}
	assert.NoError(t, valid.Validate())

	fractional := &DonationRequest{Name: "Ada", Email: "ada@x.com", Amount: decimal.RequireFromString("0.01")}
	assert.ErrorIs(t, fractional.Validate(), entity.ErrValidation)
}
