package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPayoutRequestNotFound is returned when a payout request is not found.
var ErrPayoutRequestNotFound = errors.New("payout request not found")

// PayoutRepository defines persistence for payout requests.
type PayoutRepository interface {
	// CreatePayoutRequest persists a request.
	CreatePayoutRequest(ctx context.Context, req *entity.PayoutRequest) error

	// FindPayoutRequestByID retrieves a request.
	FindPayoutRequestByID(ctx context.Context, id uuid.UUID) (*entity.PayoutRequest, error)

	// LockPayoutRequest selects a request FOR UPDATE.
	LockPayoutRequest(ctx context.Context, id uuid.UUID) (*entity.PayoutRequest, error)

	// LockBeneficiary serialises payout requests of one beneficiary until the transaction ends.
	LockBeneficiary(ctx context.Context, beneficiary entity.Beneficiary) error

	// HasPendingRequest reports whether the beneficiary has a pending request.
	HasPendingRequest(ctx context.Context, beneficiary entity.Beneficiary) (bool, error)

	// SumCompletedPayouts sums amount_requested of the beneficiary's completed requests.
	SumCompletedPayouts(ctx context.Context, beneficiary entity.Beneficiary) (decimal.Decimal, error)

	// UpdatePayoutRequest writes status, notes, processed time and linked transaction.
	UpdatePayoutRequest(ctx context.Context, req *entity.PayoutRequest) error

	// FindPayoutRequestsByBeneficiary lists requests, newest first.
	FindPayoutRequestsByBeneficiary(ctx context.Context, beneficiary entity.Beneficiary) ([]*entity.PayoutRequest, error)

	// FindPayoutRequestsByStatus lists requests with status for operators.
	FindPayoutRequestsByStatus(ctx context.Context, status entity.PayoutStatus, limit, offset int) ([]*entity.PayoutRequest, error)
}
