package handler

import (
	"context"
	"encoding/json"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"go.uber.org/fx"
)

// Media operations of the image AI endpoint.
const (
	mediaRemoveBackground = "remove-background"
	mediaEnhance          = "enhance"
)

// JobDeps are the collaborators of the job handlers.
type JobDeps struct {
	fx.In

	Notifications usecase.NotificationUsecase
	Dispatch      usecase.DispatchUsecase
	Media         service.MediaProcessor
}

// JobHandlers returns the handler for every job name the worker runs.
func JobHandlers(deps JobDeps) map[string]usecase.JobHandler {
	return map[string]usecase.JobHandler{
		constants.JobNotificationPush: func(ctx context.Context, job *entity.Job) error {
			var payload usecase.NotificationPushPayload
			if err := decode(job, &payload); err != nil {
				return err
			}

			return deps.Notifications.SendPush(ctx, payload.NotificationID)
		},
		constants.JobDispatchAssignPending: func(ctx context.Context, job *entity.Job) error {
			var payload usecase.AssignPendingPayload
			if err := decode(job, &payload); err != nil {
				return err
			}

			_, err := deps.Dispatch.AssignPending(ctx, payload.Limit)

			return err
		},
		constants.JobDispatchCreateTask: func(ctx context.Context, job *entity.Job) error {
			var payload usecase.CreateTaskPayload
			if err := decode(job, &payload); err != nil {
				return err
			}

			_, err := deps.Dispatch.CreateTaskForOrder(ctx, payload.OrderID)

			return err
		},
		constants.JobMediaRemoveBackground: func(ctx context.Context, job *entity.Job) error {
			return deps.Media.Process(ctx, mediaRemoveBackground, job.Payload)
		},
		constants.JobMediaEnhanceImage: func(ctx context.Context, job *entity.Job) error {
			return deps.Media.Process(ctx, mediaEnhance, job.Payload)
		},
	}
}

// decode rejects malformed payloads permanently; retrying cannot fix them.
func decode(job *entity.Job, out any) error {
	if err := json.Unmarshal(job.Payload, out); err != nil {
		return errors.Wrapf(service.ErrPermanentJobFailure, "malformed %s payload: %v", job.Name, err)
	}

	return nil
}
