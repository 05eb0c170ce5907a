package repository

import (
	"context"
	"errors"
	"time"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrApplicationNotFound is returned when a rider application is not found.
	ErrApplicationNotFound = errors.New("rider application not found")
	// ErrRiderNotFound is returned when a rider profile is not found.
	ErrRiderNotFound = errors.New("rider profile not found")
	// ErrBoostPackageNotFound is returned when a boost package is not found.
	ErrBoostPackageNotFound = errors.New("boost package not found")
)

// RiderRepository defines persistence for rider applications, profiles and boosts.
type RiderRepository interface {
	// CreateApplication persists a rider application.
	CreateApplication(ctx context.Context, app *entity.RiderApplication) error

	// LockApplication selects an application FOR UPDATE.
	LockApplication(ctx context.Context, id uuid.UUID) (*entity.RiderApplication, error)

	// FindOpenApplicationByUser returns the user's submitted or reviewed application awaiting decision.
	FindOpenApplicationByUser(ctx context.Context, userID uuid.UUID) (*entity.RiderApplication, error)

	// UpdateApplication writes status and review fields.
	UpdateApplication(ctx context.Context, app *entity.RiderApplication) error

	// FindProfileByUserID retrieves the rider profile of a user.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error)

	// FindProfileByID retrieves a rider profile.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.RiderProfile, error)

	// LockProfileByUserID selects the user's rider profile FOR UPDATE.
	LockProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error)

	// SaveProfile inserts or updates a profile keyed by user.
	SaveProfile(ctx context.Context, profile *entity.RiderProfile) error

	// UpdateAvailability sets approval and availability flags.
	UpdateAvailability(ctx context.Context, riderID uuid.UUID, isApproved, isAvailable bool) error

	// UpdateLocation stores the rider's last known coordinates.
	UpdateLocation(ctx context.Context, riderID uuid.UUID, lat, lng float64) error

	// FindDispatchCandidates returns approved, available riders annotated with boost and active load at now.
	FindDispatchCandidates(ctx context.Context, now time.Time) ([]*entity.DispatchCandidate, error)

	// FindBoostPackageByID retrieves a boost package.
	FindBoostPackageByID(ctx context.Context, id uuid.UUID) (*entity.BoostPackage, error)

	// FindActiveBoostPackages lists purchasable packages in display order.
	FindActiveBoostPackages(ctx context.Context) ([]*entity.BoostPackage, error)

	// CreateBoost persists a rider boost.
	CreateBoost(ctx context.Context, boost *entity.ActiveRiderBoost) error

	// FindEffectiveBoosts lists the rider's boosts effective at now.
	FindEffectiveBoosts(ctx context.Context, riderID uuid.UUID, now time.Time) ([]*entity.ActiveRiderBoost, error)

	// DeactivateExpiredBoosts flips is_active off for boosts expired at now and returns how many changed.
	DeactivateExpiredBoosts(ctx context.Context, now time.Time) (int64, error)
}
