package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the append-only 'transactions' table.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind         string          `gorm:"type:varchar(30);not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	Status       string          `gorm:"type:varchar(10);not null"`
	UserID       *uuid.UUID      `gorm:"type:uuid;index"`
	OrderID      *uuid.UUID      `gorm:"type:uuid;index"`
	GatewayTxnID string          `gorm:"type:varchar(100);index"`
	Description  string          `gorm:"type:text"`
	ReversalOf   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
