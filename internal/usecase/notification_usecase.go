package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase writes notification rows and pushes them to devices.
type NotificationUsecase interface {
	// Notify stores the notifications and enqueues one push job per row.
	Notify(ctx context.Context, notifications ...*entity.Notification) error

	// NotifyStaff sends the same message to every active staff account.
	NotifyStaff(ctx context.Context, kind entity.NotificationKind, message, link string) error

	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// SendPush delivers a stored notification to the recipient's active devices.
	SendPush(ctx context.Context, notificationID uuid.UUID) error
}
