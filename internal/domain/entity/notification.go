package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind tags a notification for client-side rendering.
type NotificationKind string

const (
	NotificationGeneral          NotificationKind = "GENERAL"
	NotificationOrderPlaced      NotificationKind = "ORDER_PLACED"
	NotificationPaymentReceived  NotificationKind = "PAYMENT_RECEIVED"
	NotificationPaymentReview    NotificationKind = "PAYMENT_REVIEW"
	NotificationOrderStatus      NotificationKind = "ORDER_STATUS"
	NotificationTaskAssigned     NotificationKind = "TASK_ASSIGNED"
	NotificationTaskPickedUp     NotificationKind = "TASK_PICKED_UP"
	NotificationTaskDelivered    NotificationKind = "TASK_DELIVERED"
	NotificationRiderApplication NotificationKind = "RIDER_APPLICATION"
	NotificationPayout           NotificationKind = "PAYOUT"
	NotificationJobFailed        NotificationKind = "JOB_FAILED"
)

// Notification is a message written for one recipient. External channels read these rows.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	Kind        NotificationKind `json:"kind"`
	Message     string           `json:"message"`
	Link        string           `json:"link,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewNotification builds an unread notification.
func NewNotification(recipientID uuid.UUID, kind NotificationKind, message, link string) *Notification {
	return &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Kind:        kind,
		Message:     message,
		Link:        link,
		CreatedAt:   time.Now(),
	}
}
