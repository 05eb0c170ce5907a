package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleType is the rider's vehicle class.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
	VehicleOther      VehicleType = "other"
)

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar, VehicleVan, VehicleOther:
		return true
	default:
		return false
	}
}

// ApplicationStatus is the rider application lifecycle.
type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// RiderDocuments maps document kinds (license_front, id_card_back, ...) to stored URLs.
type RiderDocuments map[string]string

// RiderApplication is a user's request to become a rider.
type RiderApplication struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Status              ApplicationStatus
	Phone               string
	VehicleType         VehicleType
	VehicleRegistration string
	LicenseNumber       string
	Address             string
	Documents           RiderDocuments
	AgreedToTerms       bool
	IsReviewed          bool
	IsApproved          bool
	ReviewNotes         string
	ReviewedBy          *uuid.UUID
	SubmittedAt         *time.Time
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RiderProfile exists once an application was approved. IsAvailable implies IsApproved.
type RiderProfile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Phone               string
	VehicleType         VehicleType
	VehicleRegistration string
	LicenseNumber       string
	Address             string
	Documents           RiderDocuments
	IsApproved          bool
	IsAvailable         bool
	CurrentLatitude     *float64
	CurrentLongitude    *float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// VehicleInfo renders vehicle type and registration for notifications.
func (p *RiderProfile) VehicleInfo() string {
	if p.VehicleRegistration == "" {
		return string(p.VehicleType)
	}

	return fmt.Sprintf("%s (%s)", p.VehicleType, p.VehicleRegistration)
}

// ApplyApplication copies the applicant's data and documents onto the profile.
func (p *RiderProfile) ApplyApplication(app *RiderApplication) {
	p.UserID = app.UserID
	p.Phone = app.Phone
	p.VehicleType = app.VehicleType
	p.VehicleRegistration = app.VehicleRegistration
	p.LicenseNumber = app.LicenseNumber
	p.Address = app.Address
	if p.Documents == nil {
		p.Documents = RiderDocuments{}
	}
	for kind, url := range app.Documents {
		if url != "" {
			p.Documents[kind] = url
		}
	}
}

// BoostKind is the benefit a boost grants.
type BoostKind string

const (
	BoostSearchTop       BoostKind = "search_top"
	BoostFeaturedProfile BoostKind = "featured_profile"
)

// BoostPackage is a purchasable boost.
type BoostPackage struct {
	ID           uuid.UUID
	Name         string
	Kind         BoostKind
	Duration     time.Duration
	Price        decimal.Decimal
	IsActive     bool
	DisplayOrder int
}

// IsFree reports whether the package can be activated without payment.
func (b *BoostPackage) IsFree() bool {
	return !b.Price.IsPositive()
}

// NewReference builds the gateway reference for buying this package.
func (b *BoostPackage) NewReference(riderID uuid.UUID) string {
	return fmt.Sprintf("NEXUS_BST_%s_%s_%s", riderID, b.ID, RandomHex6())
}

// ActiveRiderBoost is a boost held by a rider.
type ActiveRiderBoost struct {
	ID          uuid.UUID
	RiderID     uuid.UUID
	PackageID   uuid.UUID
	Kind        BoostKind
	ActivatedAt time.Time
	ExpiresAt   time.Time
	IsActive    bool
}

// IsEffective is true iff the boost is active and not expired at now.
func (b *ActiveRiderBoost) IsEffective(now time.Time) bool {
	return b.IsActive && b.ExpiresAt.After(now)
}

// DispatchCandidate is an available rider annotated for selection.
type DispatchCandidate struct {
	Rider      *RiderProfile
	Boosted    bool // holds an effective search-top boost
	ActiveLoad int  // tasks in ACCEPTED_BY_RIDER, PICKED_UP or OUT_FOR_DELIVERY
}
