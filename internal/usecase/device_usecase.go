package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput is what a client sends when it obtains or refreshes its FCM token.
// DeviceID is the client's own stable identifier, not the row id.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase manages the push sinks of a user. Devices are addressed by row id and may only be
// touched by their owner.
type DeviceUsecase interface {
	// RegisterDevice upserts on (user, DeviceID) and reactivates the row.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// DeactivateDevice soft-deletes the row so no further pushes are sent to it.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
