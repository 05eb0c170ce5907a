package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	TxnPayment            TransactionKind = "payment"
	TxnPayout             TransactionKind = "payout"
	TxnPlatformCommission TransactionKind = "platform_commission"
	TxnBoostPurchase      TransactionKind = "boost_purchase"
)

// IsValid checks if the kind is a valid value.
func (k TransactionKind) IsValid() bool {
	switch k {
	case TxnPayment, TxnPayout, TxnPlatformCommission, TxnBoostPurchase:
		return true
	default:
		return false
	}
}

// TransactionStatus is the state of a ledger entry. Completed entries are immutable.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
	TxnFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry.
type Transaction struct {
	ID           uuid.UUID
	Kind         TransactionKind
	Amount       decimal.Decimal
	Currency     string
	Status       TransactionStatus
	UserID       *uuid.UUID
	OrderID      *uuid.UUID
	GatewayTxnID string
	Description  string
	ReversalOf   *uuid.UUID // set on offsetting entries
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCompleted reports whether the entry is frozen.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TxnCompleted
}

// Reversal builds the completed offsetting entry for t.
func (t *Transaction) Reversal(description string) *Transaction {
	id := t.ID
	now := time.Now()

	return &Transaction{
		ID:           uuid.New(),
		Kind:         t.Kind,
		Amount:       t.Amount.Neg(),
		Currency:     t.Currency,
		Status:       TxnCompleted,
		UserID:       t.UserID,
		OrderID:      t.OrderID,
		GatewayTxnID: t.GatewayTxnID,
		Description:  description,
		ReversalOf:   &id,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
