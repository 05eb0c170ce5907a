package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorModel mirrors the 'vendors' table.
type VendorModel struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name                     string    `gorm:"type:varchar(150);not null"`
	City                     string    `gorm:"type:varchar(100)"`
	Country                  string    `gorm:"type:varchar(100)"`
	Latitude                 *float64  `gorm:"type:decimal(10,8)"`
	Longitude                *float64  `gorm:"type:decimal(11,8)"`
	VerificationStatus       string    `gorm:"type:varchar(20);not null;default:'not_started'"`
	DefaultFulfillmentMethod string    `gorm:"type:varchar(10);not null;default:'vendor'"`
	MobileMoneyProvider      string    `gorm:"type:varchar(50)"`
	MobileMoneyNumber        string    `gorm:"type:varchar(30)"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// ProductModel mirrors the 'products' table. A check constraint enforces stock >= 0.
type ProductModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Vendor            *VendorModel     `gorm:"foreignKey:VendorID"`
	Name              string           `gorm:"type:varchar(200);not null"`
	Kind              string           `gorm:"type:varchar(10);not null"`
	Stock             *int             `gorm:"check:stock IS NULL OR stock >= 0"`
	Price             decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	CategorySlug      string           `gorm:"type:varchar(100);index"`
	FulfillmentMethod *string          `gorm:"type:varchar(10)"`
	VendorDeliveryFee *decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive          bool             `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ServiceProviderModel mirrors the 'service_providers' table.
type ServiceProviderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(150);not null"`
	IsApproved bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderModel) TableName() string {
	return "service_providers"
}

// ServicePackageModel mirrors the 'service_packages' table.
type ServicePackageModel struct {
	ID           uuid.UUID             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServiceID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	ProviderID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Provider     *ServiceProviderModel `gorm:"foreignKey:ProviderID"`
	Title        string                `gorm:"type:varchar(200);not null"`
	Price        decimal.Decimal       `gorm:"type:numeric(12,2);not null"`
	DeliveryDays int                   `gorm:"not null;default:1"`
	Revisions    int                   `gorm:"not null;default:0"`
	IsActive     bool                  `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ServicePackageModel) TableName() string {
	return "service_packages"
}
