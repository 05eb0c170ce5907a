package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence for notification rows.
type NotificationRepository interface {
	// CreateNotifications persists notifications in a batch.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationByID retrieves a notification.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByRecipient lists a user's notifications, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead marks the recipient's notification as read.
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
}
