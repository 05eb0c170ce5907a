package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// JobHandler runs one attempt of a job. Errors wrapping service.ErrPermanentJobFailure are not retried.
type JobHandler func(ctx context.Context, job *entity.Job) error

// JobQueue accepts durable background submissions.
type JobQueue interface {
	// Enqueue stores the job once per (name, idempotency key) and announces it to the worker.
	Enqueue(ctx context.Context, name, idempotencyKey string, payload any) (*entity.Job, error)
}

// JobRunner executes stored jobs with bounded retries.
type JobRunner interface {
	// Process claims and runs one job attempt.
	Process(ctx context.Context, jobID uuid.UUID) error

	// RunDue processes every job whose next run time passed and returns how many were attempted.
	RunDue(ctx context.Context) (int, error)
}

// NotificationPushPayload is the payload of notification.push jobs.
type NotificationPushPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

// CreateTaskPayload is the payload of dispatch.create_task jobs.
type CreateTaskPayload struct {
	OrderID uuid.UUID `json:"order_id"`
}

// AssignPendingPayload is the payload of dispatch.assign_pending jobs.
type AssignPendingPayload struct {
	RiderID uuid.UUID `json:"rider_id"`
	Limit   int       `json:"limit"`
}

// MediaJobPayload is the payload of media.* jobs, forwarded verbatim to the media service.
type MediaJobPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
}
