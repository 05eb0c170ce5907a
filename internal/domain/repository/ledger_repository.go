package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound is returned when a ledger entry is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionImmutable is returned when an update targets a completed entry.
	ErrTransactionImmutable = errors.New("transaction is completed and immutable")
)

// LedgerRepository is the append-only transaction table. It has no delete operation.
type LedgerRepository interface {
	// CreateTransaction appends an entry.
	CreateTransaction(ctx context.Context, txn *entity.Transaction) error

	// FindTransactionByID retrieves an entry.
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindTransactionByGatewayTxnID retrieves the entry of a kind with the gateway id.
	FindTransactionByGatewayTxnID(ctx context.Context, kind entity.TransactionKind, gatewayTxnID string) (*entity.Transaction, error)

	// UpdateTransactionStatus changes status and gateway id of a non-completed entry.
	// Returns ErrTransactionImmutable when the entry is already completed.
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, gatewayTxnID string) error

	// FindTransactionsByUser lists a user's entries, newest first.
	FindTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Transaction, error)

	// SumCompleted sums completed entries of kind for the user.
	SumCompleted(ctx context.Context, userID uuid.UUID, kind entity.TransactionKind) (decimal.Decimal, error)
}
