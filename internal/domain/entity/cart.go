package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartStatus is the lifecycle of a cart.
type CartStatus string

const (
	CartOpen    CartStatus = "open"
	CartOrdered CartStatus = "ordered"
)

// Cart holds the items a customer intends to buy. A customer has at most one open cart.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    CartStatus
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CartItem references exactly one of a product or a service package.
// Stock is re-validated at order assembly, not here.
type CartItem struct {
	ID               uuid.UUID
	CartID           uuid.UUID
	ProductID        *uuid.UUID
	ServicePackageID *uuid.UUID
	Quantity         int
	CreatedAt        time.Time
}

// IsService reports whether the line references a service package.
func (i *CartItem) IsService() bool {
	return i.ServicePackageID != nil
}
