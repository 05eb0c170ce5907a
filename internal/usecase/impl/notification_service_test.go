package impl

import (
	"context"
	"fmt"
	"testing"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	userRepo         *mockRepo.MockUserRepository
	pusher           *mockSvc.MockNotificationService
	jobs             *mockUsecase.MockJobQueue
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		pusher:           mockSvc.NewMockNotificationService(t),
		jobs:             mockUsecase.NewMockJobQueue(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
		UserRepo:         fx.userRepo,
		Pusher:           fx.pusher,
		Jobs:             fx.jobs,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestNotificationService_Notify_EnqueuesPushPerRow(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	first := entity.NewNotification(uuid.New(), entity.NotificationOrderPlaced, "Order placed", "/orders/1")
	second := entity.NewNotification(uuid.New(), entity.NotificationOrderPlaced, "Order placed", "/orders/2")

	fx.notificationRepo.EXPECT().CreateNotifications(ctx, []*entity.Notification{first, second}).Return(nil).Once()
	fx.jobs.EXPECT().
		Enqueue(ctx, constants.JobNotificationPush, first.ID.String(), usecase.NotificationPushPayload{NotificationID: first.ID}).
		Return(&entity.Job{}, nil).
		Once()
	fx.jobs.EXPECT().
		Enqueue(ctx, constants.JobNotificationPush, second.ID.String(), usecase.NotificationPushPayload{NotificationID: second.ID}).
		Return(nil, errors.New("broker down")).
		Once()

	err := fx.service.Notify(ctx, first, second)

	require.NoError(t, err)
}

func TestNotificationService_Notify_StoreFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	n := entity.NewNotification(uuid.New(), entity.NotificationGeneral, "hi", "")
	fx.notificationRepo.EXPECT().CreateNotifications(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	err := fx.service.Notify(context.Background(), n)

	require.Error(t, err)
}

func TestNotificationService_NotifyStaff(t *testing.T) {
	t.Run("one row per staff member", func(t *testing.T) {
		fx := createTestNotificationService(t)
		staff := []*entity.User{{ID: uuid.New(), IsStaff: true}, {ID: uuid.New(), IsStaff: true}}

		fx.userRepo.EXPECT().FindActiveStaff(mock.Anything).Return(staff, nil).Once()
		fx.notificationRepo.EXPECT().
			CreateNotifications(mock.Anything, mock.MatchedBy(func(rows []*entity.Notification) bool {
				return len(rows) == 2 &&
					rows[0].RecipientID == staff[0].ID &&
					rows[1].RecipientID == staff[1].ID &&
					rows[0].Kind == entity.NotificationPayout
			})).
			Return(nil).
			Once()
		fx.jobs.EXPECT().Enqueue(mock.Anything, constants.JobNotificationPush, mock.Anything, mock.Anything).Return(&entity.Job{}, nil).Times(2)

		err := fx.service.NotifyStaff(context.Background(), entity.NotificationPayout, "Payout requested", "/admin/payouts")

		require.NoError(t, err)
	})

	t.Run("no staff", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.userRepo.EXPECT().FindActiveStaff(mock.Anything).Return(nil, nil).Once()

		err := fx.service.NotifyStaff(context.Background(), entity.NotificationPayout, "Payout requested", "")

		require.NoError(t, err)
	})
}

func TestNotificationService_MarkRead_Foreign(t *testing.T) {
	fx := createTestNotificationService(t)
	userID, id := uuid.New(), uuid.New()
	fx.notificationRepo.EXPECT().MarkRead(mock.Anything, userID, id).Return(repository.ErrNotificationNotFound).Once()

	err := fx.service.MarkRead(context.Background(), userID, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func devicesFor(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestNotificationService_SendPush_BatchesAndDeactivates(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	n := entity.NewNotification(uuid.New(), entity.NotificationTaskAssigned, "New delivery task", "/rider/tasks/1")
	devices := devicesFor(n.RecipientID, firebaseBatchSize+2)

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, n.ID).Return(n, nil).Once()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{n.RecipientID}).Return(devices, nil).Once()

	var batchSizes []int
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, mock.Anything, pushTitle, n.Message, map[string]string{
			"notification_id": n.ID.String(),
			"kind":            string(entity.NotificationTaskAssigned),
			"link":            "/rider/tasks/1",
		}).
		RunAndReturn(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
			batchSizes = append(batchSizes, len(tokens))
			if len(tokens) == 2 {
				return 1, 1, []string{tokens[1]}, nil
			}

			return len(tokens), 0, nil, nil
		}).
		Times(2)
	fx.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{fmt.Sprintf("token-%d", firebaseBatchSize+1)}).Return(nil).Once()

	err := fx.service.SendPush(ctx, n.ID)

	require.NoError(t, err)
	assert.Equal(t, []int{firebaseBatchSize, 2}, batchSizes)
}

func TestNotificationService_SendPush_Failures(t *testing.T) {
	t.Run("missing notification is permanent", func(t *testing.T) {
		fx := createTestNotificationService(t)
		id := uuid.New()
		fx.notificationRepo.EXPECT().FindNotificationByID(mock.Anything, id).Return(nil, repository.ErrNotificationNotFound).Once()

		err := fx.service.SendPush(context.Background(), id)

		assert.ErrorIs(t, err, service.ErrPermanentJobFailure)
	})

	t.Run("no devices", func(t *testing.T) {
		fx := createTestNotificationService(t)
		n := entity.NewNotification(uuid.New(), entity.NotificationGeneral, "hi", "")
		fx.notificationRepo.EXPECT().FindNotificationByID(mock.Anything, n.ID).Return(n, nil).Once()
		fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{n.RecipientID}).Return(nil, nil).Once()

		require.NoError(t, fx.service.SendPush(context.Background(), n.ID))
	})

	t.Run("batch error is retried", func(t *testing.T) {
		fx := createTestNotificationService(t)
		n := entity.NewNotification(uuid.New(), entity.NotificationGeneral, "hi", "")
		fx.notificationRepo.EXPECT().FindNotificationByID(mock.Anything, n.ID).Return(n, nil).Once()
		fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{n.RecipientID}).Return(devicesFor(n.RecipientID, 1), nil).Once()
		fx.pusher.EXPECT().
			SendBatchNotification(mock.Anything, []string{"token-0"}, pushTitle, "hi", mock.Anything).
			Return(0, 0, nil, errors.New("firebase unavailable")).
			Once()

		err := fx.service.SendPush(context.Background(), n.ID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrPermanentJobFailure)
	})
}
