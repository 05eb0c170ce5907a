package handler

import (
	"context"
	"encoding/json"
	"testing"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/service"
	mockSvc "nexus/internal/mocks/service"
	mockUsecase "nexus/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobHandlers(t *testing.T) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	media := mockSvc.NewMockMediaProcessor(t)

	handlers := JobHandlers(JobDeps{Notifications: notifications, Dispatch: dispatch, Media: media})
	require.Len(t, handlers, 5)

	ctx := context.Background()

	t.Run("push", func(t *testing.T) {
		id := uuid.New()
		notifications.EXPECT().SendPush(ctx, id).Return(nil).Once()

		err := handlers[constants.JobNotificationPush](ctx, &entity.Job{
			Name:    constants.JobNotificationPush,
			Payload: json.RawMessage(`{"notification_id":"` + id.String() + `"}`),
		})

		require.NoError(t, err)
	})

	t.Run("assign pending", func(t *testing.T) {
		dispatch.EXPECT().AssignPending(ctx, 20).Return(3, nil).Once()

		err := handlers[constants.JobDispatchAssignPending](ctx, &entity.Job{
			Name:    constants.JobDispatchAssignPending,
			Payload: json.RawMessage(`{"rider_id":"` + uuid.NewString() + `","limit":20}`),
		})

		require.NoError(t, err)
	})

	t.Run("create task retries after a transient failure", func(t *testing.T) {
		orderID := uuid.New()
		job := &entity.Job{
			Name:    constants.JobDispatchCreateTask,
			Payload: json.RawMessage(`{"order_id":"` + orderID.String() + `"}`),
		}
		dispatch.EXPECT().CreateTaskForOrder(ctx, orderID).Return(nil, errors.New("db down")).Once()
		dispatch.EXPECT().CreateTaskForOrder(ctx, orderID).Return(&entity.DeliveryTask{OrderID: orderID}, nil).Once()

		err := handlers[constants.JobDispatchCreateTask](ctx, job)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrPermanentJobFailure)

		require.NoError(t, handlers[constants.JobDispatchCreateTask](ctx, job))
	})

	t.Run("media operations", func(t *testing.T) {
		payload := json.RawMessage(`{"image_url":"https://cdn/p.jpg"}`)
		media.EXPECT().Process(ctx, "remove-background", payload).Return(nil).Once()
		media.EXPECT().Process(ctx, "enhance", payload).Return(nil).Once()

		require.NoError(t, handlers[constants.JobMediaRemoveBackground](ctx, &entity.Job{Payload: payload}))
		require.NoError(t, handlers[constants.JobMediaEnhanceImage](ctx, &entity.Job{Payload: payload}))
	})

	t.Run("malformed payload is permanent", func(t *testing.T) {
		err := handlers[constants.JobNotificationPush](ctx, &entity.Job{
			Name:    constants.JobNotificationPush,
			Payload: json.RawMessage(`{"notification_id":42}`),
		})

		assert.ErrorIs(t, err, service.ErrPermanentJobFailure)
	})
}
