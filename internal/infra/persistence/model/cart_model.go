package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A partial unique index on user_id WHERE status = 'open'
// keeps one open cart per customer.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_carts_open_user,where:status = 'open'"`
	Status    string           `gorm:"type:varchar(10);not null;default:'open'"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID        *uuid.UUID `gorm:"type:uuid"`
	ServicePackageID *uuid.UUID `gorm:"type:uuid"`
	Quantity         int        `gorm:"not null;check:quantity >= 1"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
