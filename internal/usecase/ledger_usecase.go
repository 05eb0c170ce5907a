package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordTransactionInput carries the columns of a new ledger entry.
type RecordTransactionInput struct {
	Kind         entity.TransactionKind
	Amount       decimal.Decimal
	Currency     string
	Status       entity.TransactionStatus
	UserID       *uuid.UUID
	OrderID      *uuid.UUID
	GatewayTxnID string
	Description  string
}

// LedgerUsecase is the append-only transaction ledger and the balance derivation on top of it.
type LedgerUsecase interface {
	// Record appends an entry.
	Record(ctx context.Context, input *RecordTransactionInput) (*entity.Transaction, error)

	// Complete moves a pending entry to completed. Completed entries are immutable.
	Complete(ctx context.Context, id uuid.UUID, gatewayTxnID string) error

	// Fail moves a pending entry to failed.
	Fail(ctx context.Context, id uuid.UUID) error

	// Reverse issues a completed offsetting entry for a completed entry.
	Reverse(ctx context.Context, id uuid.UUID, reason string) (*entity.Transaction, error)

	// Balance derives credits minus completed payouts for the beneficiary.
	Balance(ctx context.Context, beneficiary entity.Beneficiary) (decimal.Decimal, error)

	// ListForUser lists a user's entries, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Transaction, error)
}
