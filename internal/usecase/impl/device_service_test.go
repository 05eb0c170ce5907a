package impl

import (
	"context"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, input.DeviceID).
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, input.FCMToken, device.FCMToken)
	assert.Equal(t, input.DeviceID, device.DeviceID)
	assert.Equal(t, input.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-123", FCMToken: "old"}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "new").
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: "new", DeviceID: "device-123", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "d").
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{FCMToken: "t", DeviceID: "d", Platform: "web"})

	assert.Error(t, err)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		setup   func(ctx context.Context, repo *mockRepo.MockDeviceRepository)
		wantErr error
	}{
		{
			name: "success",
			setup: func(ctx context.Context, repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				repo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(ctx context.Context, repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name: "owned by another user",
			setup: func(ctx context.Context, repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			tt.setup(ctx, fx.deviceRepo)

			err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
