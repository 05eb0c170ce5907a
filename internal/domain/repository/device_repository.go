package repository

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the user already registered the device id.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines persistence for push devices.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDeviceByUserAndDeviceID retrieves a user's device by the client-side identifier.
	FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUsers returns the active devices of all given users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the token and reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateTokens marks devices holding any of the tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// DeleteDevice soft-deletes a device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
