package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// RiderApplicationInput is what an applicant submits.
type RiderApplicationInput struct {
	Phone               string                `json:"phone" validate:"required"`
	VehicleType         entity.VehicleType    `json:"vehicle_type" validate:"required"`
	VehicleRegistration string                `json:"vehicle_registration"`
	LicenseNumber       string                `json:"license_number"`
	Address             string                `json:"address" validate:"required"`
	Documents           entity.RiderDocuments `json:"documents"`
	AgreedToTerms       bool                  `json:"agreed_to_terms"`
}

// BoostActivation is the result of ActivateBoost. Exactly one of Boost or AuthorizationURL is set.
type BoostActivation struct {
	Boost            *entity.ActiveRiderBoost `json:"boost,omitempty"`
	AuthorizationURL string                   `json:"authorization_url,omitempty"`
	Reference        string                   `json:"reference,omitempty"`
}

// RiderUsecase manages the rider application, profile, availability and boosts.
type RiderUsecase interface {
	// SubmitApplication files an application for review.
	SubmitApplication(ctx context.Context, userID uuid.UUID, input *RiderApplicationInput) (*entity.RiderApplication, error)

	// ReviewApplication records an operator decision.
	ReviewApplication(ctx context.Context, operatorID, applicationID uuid.UUID, approve bool, notes string) (*entity.RiderApplication, error)

	// GetProfile returns the caller's rider profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error)

	// SetAvailable toggles availability. Fails with NOT_APPROVED unless the rider is approved.
	SetAvailable(ctx context.Context, userID uuid.UUID, available bool) (*entity.RiderProfile, error)

	// UpdateLocation stores the rider's current coordinates.
	UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) error

	// ListBoostPackages lists purchasable boosts.
	ListBoostPackages(ctx context.Context) ([]*entity.BoostPackage, error)

	// ActivateBoost activates a free package at once, or starts the gateway payment of a paid one.
	ActivateBoost(ctx context.Context, userID, packageID uuid.UUID) (*BoostActivation, error)

	// ConfirmBoostPayment verifies a boost payment and creates the boost exactly once.
	ConfirmBoostPayment(ctx context.Context, reference string) (*entity.ActiveRiderBoost, error)

	// ExpireBoosts deactivates boosts whose expiry passed.
	ExpireBoosts(ctx context.Context) (int64, error)
}
