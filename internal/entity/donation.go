package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualBankTransferIntentID marks donations made outside the card flow.
// No processor webhook ever confirms these, so they stay pending.
const ManualBankTransferIntentID = "manual-bank-transfer"

// Donation represents a single gift, either a card payment or a manual
// bank transfer. Amount is stored in whole currency units.
type Donation struct {
	ID              int64           `db:"id" json:"id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Name            string          `db:"name" json:"name"`
	Email           string          `db:"email" json:"email"`
	Message         string          `db:"message" json:"message"`
	PaymentIntentID string          `db:"payment_intent_id" json:"paymentIntentId"`
	Status          DonationStatus  `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updatedAt"`
}

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusSucceeded DonationStatus = "succeeded"
	DonationStatusFailed    DonationStatus = "failed"
)

func (s DonationStatus) String() string {
	return string(s)
}

func (d *Donation) IsPending() bool {
	return d.Status == DonationStatusPending
}

func (d *Donation) IsTerminal() bool {
	return d.Status == DonationStatusSucceeded || d.Status == DonationStatusFailed
}

// CanTransitionTo reports whether the donation may move to the target
// status. Only a pending donation moves, and only to a terminal status;
// a donation never leaves a terminal status.
func (d *Donation) CanTransitionTo(target DonationStatus) bool {
	if !d.IsPending() {
		return false
	}
	return target == DonationStatusSucceeded || target == DonationStatusFailed
}
