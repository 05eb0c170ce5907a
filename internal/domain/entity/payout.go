package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeneficiaryKind names the profile type receiving a payout.
type BeneficiaryKind string

const (
	BeneficiaryRider    BeneficiaryKind = "rider"
	BeneficiaryVendor   BeneficiaryKind = "vendor"
	BeneficiaryProvider BeneficiaryKind = "provider"
)

// IsValid checks if the kind is a valid value.
func (k BeneficiaryKind) IsValid() bool {
	return k == BeneficiaryRider || k == BeneficiaryVendor || k == BeneficiaryProvider
}

// Beneficiary identifies exactly one rider, vendor or provider profile.
type Beneficiary struct {
	Kind      BeneficiaryKind
	ProfileID uuid.UUID
	UserID    uuid.UUID
}

// PayoutStatus is the payout request lifecycle.
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutRejected   PayoutStatus = "rejected"
	PayoutFailed     PayoutStatus = "failed"
)

// IsValid checks if the PayoutStatus is a known state.
func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutPending, PayoutProcessing, PayoutCompleted, PayoutRejected, PayoutFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes pending → processing → {completed, failed} and pending → rejected.
func (s PayoutStatus) CanTransitionTo(next PayoutStatus) bool {
	switch s {
	case PayoutPending:
		return next == PayoutProcessing || next == PayoutRejected
	case PayoutProcessing:
		return next == PayoutCompleted || next == PayoutFailed
	default:
		return false
	}
}

// PayoutRequest asks operators to pay out part of a beneficiary's balance.
type PayoutRequest struct {
	ID              uuid.UUID
	Beneficiary     Beneficiary
	AmountRequested decimal.Decimal
	Status          PayoutStatus
	PaymentDetails  string
	AdminNotes      string
	TransactionID   *uuid.UUID
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
