package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobModel mirrors the 'jobs' table. (name, idempotency_key) is unique.
type JobModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string         `gorm:"type:varchar(60);not null;uniqueIndex:idx_jobs_name_key"`
	IdempotencyKey string         `gorm:"type:varchar(150);not null;uniqueIndex:idx_jobs_name_key"`
	Payload        datatypes.JSON `gorm:"type:jsonb"`
	Status         string         `gorm:"type:varchar(10);not null;index:idx_jobs_status_next"`
	Attempts       int            `gorm:"not null;default:0"`
	MaxAttempts    int            `gorm:"not null"`
	NextRunAt      time.Time      `gorm:"not null;index:idx_jobs_status_next"`
	LastError      string         `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
