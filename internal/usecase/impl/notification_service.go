package impl

import (
	"context"
	"log/slog"

	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	pushTitle = "Nexus"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	userRepo         repository.UserRepository
	pusher           service.NotificationService
	jobs             usecase.JobQueue
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	UserRepo         repository.UserRepository
	Pusher           service.NotificationService
	Jobs             usecase.JobQueue
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		userRepo:         params.UserRepo,
		pusher:           params.Pusher,
		jobs:             params.Jobs,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify stores the rows in one batch. A failed push enqueue is logged; the row stays readable in-app.
func (srv *notificationService) Notify(ctx context.Context, notifications ...*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	if err := srv.notificationRepo.CreateNotifications(ctx, notifications); err != nil {
		return errors.Wrap(err, "failed to create notifications")
	}

	for _, n := range notifications {
		_, err := srv.jobs.Enqueue(ctx, constants.JobNotificationPush, n.ID.String(),
			usecase.NotificationPushPayload{NotificationID: n.ID})
		if err != nil {
			srv.log(ctx).Warn("Failed to enqueue push",
				slog.String("notification_id", n.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (srv *notificationService) NotifyStaff(ctx context.Context, kind entity.NotificationKind, message, link string) error {
	staff, err := srv.userRepo.FindActiveStaff(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to find staff")
	}
	if len(staff) == 0 {
		srv.log(ctx).Warn("No active staff to notify", slog.String("kind", string(kind)))

		return nil
	}

	notifications := make([]*entity.Notification, 0, len(staff))
	for _, user := range staff {
		notifications = append(notifications, entity.NewNotification(user.ID, kind, message, link))
	}

	return srv.Notify(ctx, notifications...)
}

func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = normalizePage(limit, offset)

	notifications, err := srv.notificationRepo.FindNotificationsByRecipient(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		return notFound(err, repository.ErrNotificationNotFound, "notification")
	}

	return nil
}

// SendPush delivers one notification to the recipient's active devices in Firebase-sized batches
// and deactivates the tokens Firebase reports as unregistered. A failed batch fails the call so the
// job is retried; tokens from earlier batches are still cleaned up.
func (srv *notificationService) SendPush(ctx context.Context, notificationID uuid.UUID) error {
	n, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(service.ErrPermanentJobFailure, "notification not found")
		}

		return errors.Wrap(err, "failed to load notification")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUsers(ctx, []uuid.UUID{n.RecipientID})
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"notification_id": n.ID.String(),
		"kind":            string(n.Kind),
		"link":            n.Link,
	}

	var (
		sent, failed  int
		invalidTokens []string
		sendErr       error
	)

	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]

		ok, bad, invalid, err := srv.pusher.SendBatchNotification(ctx, batch, pushTitle, n.Message, data)
		if err != nil {
			sendErr = errors.Join(sendErr, err)

			continue
		}

		sent += ok
		failed += bad
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("Push sent",
		slog.String("notification_id", n.ID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if sendErr != nil {
		return errors.Wrap(sendErr, "failed to send push batch")
	}

	return nil
}
