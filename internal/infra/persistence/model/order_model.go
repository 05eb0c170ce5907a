package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PublicID             string            `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID               uuid.UUID         `gorm:"type:uuid;not null;index"`
	Status               string            `gorm:"type:varchar(30);not null;index"`
	PaymentMethod        *string           `gorm:"type:varchar(10)"`
	GatewayRef           *string           `gorm:"type:varchar(100);uniqueIndex"`
	GatewayTxnID         string            `gorm:"type:varchar(100)"`
	Currency             string            `gorm:"type:varchar(3);not null"`
	Subtotal             decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	PlatformDeliveryFee  decimal.Decimal   `gorm:"type:numeric(12,2);not null;default:0"`
	VendorDeliveryFeeSum decimal.Decimal   `gorm:"type:numeric(12,2);not null;default:0"`
	Total                decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	BillingSnapshot      string            `gorm:"type:text;not null"`
	ShippingSnapshot     string            `gorm:"type:text"`
	ShippingLatitude     *float64          `gorm:"type:decimal(10,8)"`
	ShippingLongitude    *float64          `gorm:"type:decimal(11,8)"`
	CustomerConfirmedAt  *time.Time
	CancelReason         string            `gorm:"type:text"`
	DisputeReason        string            `gorm:"type:text"`
	Items                []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. A check constraint enforces that exactly one
// of product_id and service_package_id is set.
type OrderItemModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID          *uuid.UUID      `gorm:"type:uuid;index"`
	ServicePackageID   *uuid.UUID      `gorm:"type:uuid;index"`
	VendorID           *uuid.UUID      `gorm:"type:uuid;index"`
	ProviderID         *uuid.UUID      `gorm:"type:uuid;index"`
	ProductKind        string          `gorm:"type:varchar(10)"`
	CategorySlug       string          `gorm:"type:varchar(100)"`
	SnapshotName       string          `gorm:"type:varchar(200);not null"`
	UnitPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity           int             `gorm:"not null"`
	FulfillmentMethod  string          `gorm:"type:varchar(10)"`
	ItemDeliveryCharge decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
