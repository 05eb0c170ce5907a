package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutRequestModel mirrors the 'payout_requests' table.
type PayoutRequestModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BeneficiaryKind      string          `gorm:"type:varchar(10);not null;index:idx_payout_beneficiary"`
	BeneficiaryProfileID uuid.UUID       `gorm:"type:uuid;not null;index:idx_payout_beneficiary"`
	BeneficiaryUserID    uuid.UUID       `gorm:"type:uuid;not null"`
	AmountRequested      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status               string          `gorm:"type:varchar(12);not null;index"`
	PaymentDetails       string          `gorm:"type:text"`
	AdminNotes           string          `gorm:"type:text"`
	TransactionID        *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PayoutRequestModel) TableName() string {
	return "payout_requests"
}
