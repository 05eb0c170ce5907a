package repository

import (
	"context"
	"errors"
	"time"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobNotClaimable is returned when the job is finished, leased by another worker or not due.
	ErrJobNotClaimable = errors.New("job not claimable")
)

// JobRepository is the durable store behind the background job queue.
type JobRepository interface {
	// EnqueueJob inserts the job unless (name, idempotency key) exists, and returns the stored job.
	// created is false when an existing job was returned.
	EnqueueJob(ctx context.Context, job *entity.Job) (stored *entity.Job, created bool, err error)

	// FindJobByID retrieves a job.
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// ClaimJob moves a due job to running, increments attempts and leases it until leaseUntil.
	// A running job whose lease expired can be claimed again.
	ClaimJob(ctx context.Context, id uuid.UUID, now, leaseUntil time.Time) (*entity.Job, error)

	// MarkSucceeded finishes a running job.
	MarkSucceeded(ctx context.Context, id uuid.UUID) error

	// ScheduleRetry puts a running job back to queued with the next run time and the last error.
	ScheduleRetry(ctx context.Context, id uuid.UUID, nextRunAt time.Time, lastError string) error

	// MarkDead finishes a running job permanently.
	MarkDead(ctx context.Context, id uuid.UUID, lastError string) error

	// FindDueJobIDs lists queued jobs with next_run_at <= now plus running jobs whose lease expired.
	FindDueJobIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}
