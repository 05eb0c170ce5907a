package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrPermanentJobFailure marks a job failure that retrying cannot fix. The runner dead-letters such jobs at once.
var ErrPermanentJobFailure = errors.New("permanent job failure")

// JobMessage announces that a durable job is ready to run.
type JobMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	JobID     string `json:"job_id"`
	Name      string `json:"name"`
	Attempt   int    `json:"attempt"`
}

// JobPublisher hands job messages to the worker transport.
// Delivery is at-least-once; the job row is the source of truth.
type JobPublisher interface {
	// PublishJob publishes a message for a stored job
	PublishJob(ctx context.Context, msg *JobMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
