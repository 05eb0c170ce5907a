package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType distinguishes billing from shipping addresses.
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	return t == AddressTypeBilling || t == AddressTypeShipping
}

// Address is a customer-owned postal address. At most one default exists per (user, type).
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID   // Owner of the address.
	Type      AddressType // billing or shipping.
	FullName  string
	Street    string
	City      string
	Region    string
	Country   string
	Phone     string
	Latitude  *float64 // Coordinates resolved by the external geocoder, if any.
	Longitude *float64
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo reports whether the address is owned by the given user.
func (a *Address) BelongsTo(userID uuid.UUID) bool {
	return a != nil && a.UserID == userID
}

// Snapshot renders the address as frozen text for an order.
func (a *Address) Snapshot() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.FullName, a.Street, a.City, a.Region, a.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	if phone := strings.TrimSpace(a.Phone); phone != "" {
		parts = append(parts, "Tel: "+phone)
	}

	return strings.Join(parts, ", ")
}
