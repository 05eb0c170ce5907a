package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RiderApplicationModel mirrors the 'rider_applications' table.
type RiderApplicationModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	Status              string            `gorm:"type:varchar(20);not null"`
	Phone               string            `gorm:"type:varchar(30);not null"`
	VehicleType         string            `gorm:"type:varchar(20);not null"`
	VehicleRegistration string            `gorm:"type:varchar(50)"`
	LicenseNumber       string            `gorm:"type:varchar(50)"`
	Address             string            `gorm:"type:text"`
	Documents           datatypes.JSONMap `gorm:"type:jsonb"`
	AgreedToTerms       bool              `gorm:"not null;default:false"`
	IsReviewed          bool              `gorm:"not null;default:false"`
	IsApproved          bool              `gorm:"not null;default:false"`
	ReviewNotes         string            `gorm:"type:text"`
	ReviewedBy          *uuid.UUID        `gorm:"type:uuid"`
	SubmittedAt         *time.Time
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderApplicationModel) TableName() string {
	return "rider_applications"
}

// RiderProfileModel mirrors the 'rider_profiles' table.
// A check constraint enforces NOT is_available OR is_approved.
type RiderProfileModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Phone               string            `gorm:"type:varchar(30)"`
	VehicleType         string            `gorm:"type:varchar(20)"`
	VehicleRegistration string            `gorm:"type:varchar(50)"`
	LicenseNumber       string            `gorm:"type:varchar(50)"`
	Address             string            `gorm:"type:text"`
	Documents           datatypes.JSONMap `gorm:"type:jsonb"`
	IsApproved          bool              `gorm:"not null;default:false"`
	IsAvailable         bool              `gorm:"not null;default:false;check:NOT is_available OR is_approved"`
	CurrentLatitude     *float64          `gorm:"type:decimal(10,8)"`
	CurrentLongitude    *float64          `gorm:"type:decimal(11,8)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderProfileModel) TableName() string {
	return "rider_profiles"
}

// BoostPackageModel mirrors the 'boost_packages' table.
type BoostPackageModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Kind            string          `gorm:"type:varchar(30);not null"`
	DurationSeconds int64           `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IsActive        bool            `gorm:"not null;default:true"`
	DisplayOrder    int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (BoostPackageModel) TableName() string {
	return "boost_packages"
}

// ActiveRiderBoostModel mirrors the 'active_rider_boosts' table.
type ActiveRiderBoostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RiderID     uuid.UUID `gorm:"type:uuid;not null;index:idx_boosts_rider_kind"`
	PackageID   uuid.UUID `gorm:"type:uuid;not null"`
	Kind        string    `gorm:"type:varchar(30);not null;index:idx_boosts_rider_kind"`
	ActivatedAt time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ActiveRiderBoostModel) TableName() string {
	return "active_rider_boosts"
}

// DispatchCandidateRow is the projection of the rider selection query.
type DispatchCandidateRow struct {
	RiderProfileModel
	Boosted    bool
	ActiveLoad int
}
