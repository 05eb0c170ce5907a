package postgres

import (
	"context"
	"encoding/json"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// EnqueueJob inserts the job with ON CONFLICT DO NOTHING and falls back to the stored row.
func (repo *jobRepository) EnqueueJob(ctx context.Context, job *entity.Job) (*entity.Job, bool, error) {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "idempotency_key"}},
			DoNothing: true,
		}).
		Create(jobM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to enqueue job")
	}
	if result.RowsAffected > 0 {
		return toJobDomain(jobM), true, nil
	}

	var existing model.JobModel
	if err := repo.db.WithContext(ctx).
		Where("name = ? AND idempotency_key = ?", job.Name, job.IdempotencyKey).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to find existing job")
	}

	return toJobDomain(&existing), false, nil
}

// FindJobByID retrieves a job by its unique ID.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

// ClaimJob leases a due job with a conditional update so only one worker wins.
func (repo *jobRepository) ClaimJob(ctx context.Context, id uuid.UUID, now, leaseUntil time.Time) (*entity.Job, error) {
	var jobM model.JobModel

	result := repo.db.WithContext(ctx).
		Model(&jobM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status IN ? AND next_run_at <= ?",
			id, []string{string(entity.JobQueued), string(entity.JobRunning)}, now).
		Updates(map[string]interface{}{
			"status":      string(entity.JobRunning),
			"attempts":    gorm.Expr("attempts + 1"),
			"next_run_at": leaseUntil,
			"updated_at":  now,
		})

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim job")
	}
	if result.RowsAffected > 0 {
		return toJobDomain(&jobM), nil
	}

	if _, err := repo.FindJobByID(ctx, id); err != nil {
		return nil, err
	}

	return nil, repository.ErrJobNotClaimable
}

// MarkSucceeded finishes a running job.
func (repo *jobRepository) MarkSucceeded(ctx context.Context, id uuid.UUID) error {
	return repo.finish(ctx, id, map[string]interface{}{
		"status":     string(entity.JobSucceeded),
		"last_error": "",
		"updated_at": time.Now(),
	})
}

// ScheduleRetry queues a running job again at nextRunAt.
func (repo *jobRepository) ScheduleRetry(ctx context.Context, id uuid.UUID, nextRunAt time.Time, lastError string) error {
	return repo.finish(ctx, id, map[string]interface{}{
		"status":      string(entity.JobQueued),
		"next_run_at": nextRunAt,
		"last_error":  lastError,
		"updated_at":  time.Now(),
	})
}

// MarkDead finishes a running job permanently.
func (repo *jobRepository) MarkDead(ctx context.Context, id uuid.UUID, lastError string) error {
	return repo.finish(ctx, id, map[string]interface{}{
		"status":     string(entity.JobDead),
		"last_error": lastError,
		"updated_at": time.Now(),
	})
}

func (repo *jobRepository) finish(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ? AND status = ?", id, string(entity.JobRunning)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// FindDueJobIDs lists claimable jobs, oldest due first.
func (repo *jobRepository) FindDueJobIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("status IN ? AND next_run_at <= ?",
			[]string{string(entity.JobQueued), string(entity.JobRunning)}, now).
		Order("next_run_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due jobs")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.Job {
	return &entity.Job{
		ID:             data.ID,
		Name:           data.Name,
		IdempotencyKey: data.IdempotencyKey,
		Payload:        json.RawMessage(data.Payload),
		Status:         entity.JobStatus(data.Status),
		Attempts:       data.Attempts,
		MaxAttempts:    data.MaxAttempts,
		NextRunAt:      data.NextRunAt,
		LastError:      data.LastError,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.Job) *model.JobModel {
	return &model.JobModel{
		ID:             data.ID,
		Name:           data.Name,
		IdempotencyKey: data.IdempotencyKey,
		Payload:        datatypes.JSON(data.Payload),
		Status:         string(data.Status),
		Attempts:       data.Attempts,
		MaxAttempts:    data.MaxAttempts,
		NextRunAt:      data.NextRunAt,
		LastError:      data.LastError,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
