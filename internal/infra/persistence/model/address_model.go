package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// A partial unique index keeps one default per (user_id, address_type).
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_user_type"`
	AddressType string    `gorm:"type:varchar(20);not null;index:idx_addresses_user_type"`
	FullName    string    `gorm:"type:varchar(150);not null"`
	Street      string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100)"`
	Region      string    `gorm:"type:varchar(100)"`
	Country     string    `gorm:"type:varchar(100)"`
	Phone       string    `gorm:"type:varchar(30)"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
