package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the durable job lifecycle.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobDead      JobStatus = "dead"
)

// Job is a durable background submission. (Name, IdempotencyKey) is unique.
type Job struct {
	ID             uuid.UUID
	Name           string
	IdempotencyKey string
	Payload        json.RawMessage
	Status         JobStatus
	Attempts       int
	MaxAttempts    int
	NextRunAt      time.Time
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Exhausted reports whether no attempts are left.
func (j *Job) Exhausted() bool {
	return j.Attempts >= j.MaxAttempts
}
