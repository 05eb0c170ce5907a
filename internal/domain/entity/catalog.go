package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FulfillmentMethod says who physically delivers an item.
type FulfillmentMethod string

const (
	// FulfillmentNexus items are delivered by platform riders.
	FulfillmentNexus FulfillmentMethod = "nexus"
	// FulfillmentVendor items are delivered by the vendor.
	FulfillmentVendor FulfillmentMethod = "vendor"
)

// IsValid checks if the FulfillmentMethod is a valid value.
func (m FulfillmentMethod) IsValid() bool {
	return m == FulfillmentNexus || m == FulfillmentVendor
}

// VerificationStatus is the vendor onboarding state.
type VerificationStatus string

const (
	VerificationNotStarted    VerificationStatus = "not_started"
	VerificationPendingReview VerificationStatus = "pending_review"
	VerificationApproved      VerificationStatus = "approved"
	VerificationRejected      VerificationStatus = "rejected"
)

// Vendor sells products. Only approved vendors' products are available.
type Vendor struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	Name                     string
	City                     string
	Country                  string
	Latitude                 *float64
	Longitude                *float64
	VerificationStatus       VerificationStatus
	DefaultFulfillmentMethod FulfillmentMethod
	MobileMoneyProvider      string
	MobileMoneyNumber        string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// IsApproved reports whether the vendor passed verification.
func (v *Vendor) IsApproved() bool {
	return v != nil && v.VerificationStatus == VerificationApproved
}

// PickupText renders the vendor location used as a pickup snapshot.
func (v *Vendor) PickupText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Name, v.City, v.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "Vendor address details incomplete for pickup."
	}

	return strings.Join(parts, ", ")
}

// ProductKind separates stocked goods from downloads.
type ProductKind string

const (
	ProductPhysical ProductKind = "physical"
	ProductDigital  ProductKind = "digital"
)

// Product is a vendor listing. Physical products carry stock, digital ones never do.
type Product struct {
	ID                uuid.UUID
	VendorID          uuid.UUID
	Vendor            *Vendor // Loaded alongside the product when availability matters.
	Name              string
	Kind              ProductKind
	Stock             *int
	Price             decimal.Decimal
	CategorySlug      string
	FulfillmentMethod *FulfillmentMethod // Overrides the vendor default when set.
	VendorDeliveryFee *decimal.Decimal
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsPhysical reports whether the product is a stocked good.
func (p *Product) IsPhysical() bool {
	return p.Kind == ProductPhysical
}

// IsAvailable is true iff the product is active and its vendor is approved.
func (p *Product) IsAvailable() bool {
	return p != nil && p.IsActive && p.Vendor.IsApproved()
}

// EffectiveFulfillment resolves the product override, then the vendor default.
func (p *Product) EffectiveFulfillment() FulfillmentMethod {
	if p.FulfillmentMethod != nil && p.FulfillmentMethod.IsValid() {
		return *p.FulfillmentMethod
	}
	if p.Vendor != nil && p.Vendor.DefaultFulfillmentMethod.IsValid() {
		return p.Vendor.DefaultFulfillmentMethod
	}

	return FulfillmentVendor
}

// HasStockFor reports whether qty units can be taken from stock.
func (p *Product) HasStockFor(qty int) bool {
	if !p.IsPhysical() {
		return true
	}

	return p.Stock != nil && *p.Stock >= qty
}

// Validate checks the stock invariant for the product kind.
func (p *Product) Validate() error {
	switch p.Kind {
	case ProductDigital:
		if p.Stock != nil {
			return fmt.Errorf("digital product %s must not carry stock", p.ID)
		}
	case ProductPhysical:
		if p.Stock == nil || *p.Stock < 0 {
			return fmt.Errorf("physical product %s must have non-negative stock", p.ID)
		}
	default:
		return fmt.Errorf("unknown product kind %q", p.Kind)
	}

	return nil
}

// ServiceProvider sells service packages.
type ServiceProvider struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ServicePackage is a priced offering of a service.
type ServicePackage struct {
	ID           uuid.UUID
	ServiceID    uuid.UUID
	ProviderID   uuid.UUID
	Provider     *ServiceProvider
	Title        string
	Price        decimal.Decimal
	DeliveryDays int
	Revisions    int
	IsActive     bool
}

// IsAvailable is true iff the package is active and its provider is approved.
func (s *ServicePackage) IsAvailable() bool {
	return s != nil && s.IsActive && s.Provider != nil && s.Provider.IsApproved
}
