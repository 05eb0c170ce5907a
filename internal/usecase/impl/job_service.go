package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type jobQueue struct {
	jobRepo     repository.JobRepository
	publisher   service.JobPublisher
	maxAttempts int
	logger      *slog.Logger
}

// NewJobQueue creates the durable job queue.
func NewJobQueue(
	jobRepo repository.JobRepository,
	publisher service.JobPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.JobQueue {
	return &jobQueue{
		jobRepo:     jobRepo,
		publisher:   publisher,
		maxAttempts: cfg.Jobs.MaxAttempts,
		logger:      logger,
	}
}

// Enqueue stores the job and announces it. A publish failure is only logged: the row stays queued
// and the sweeper runs it once it is due.
func (q *jobQueue) Enqueue(ctx context.Context, name, idempotencyKey string, payload any) (*entity.Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal job payload")
	}

	now := time.Now()
	stored, created, err := q.jobRepo.EnqueueJob(ctx, &entity.Job{
		ID:             uuid.New(),
		Name:           name,
		IdempotencyKey: idempotencyKey,
		Payload:        raw,
		Status:         entity.JobQueued,
		MaxAttempts:    q.maxAttempts,
		NextRunAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to enqueue job %s", name)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, q.logger)
	if !created && stored.Status != entity.JobQueued {
		logger.Debug("Job already enqueued",
			slog.String("job_id", stored.ID.String()),
			slog.String("name", name),
			slog.String("status", string(stored.Status)),
		)

		return stored, nil
	}

	msg := &service.JobMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		JobID:     stored.ID.String(),
		Name:      stored.Name,
		Attempt:   stored.Attempts,
	}
	if err := q.publisher.PublishJob(ctx, msg); err != nil {
		logger.Warn("Failed to publish job, leaving it to the sweeper",
			slog.String("job_id", stored.ID.String()),
			slog.String("name", name),
			slog.Any("error", err),
		)
	}

	return stored, nil
}

type jobRunner struct {
	jobRepo     repository.JobRepository
	handlers    map[string]usecase.JobHandler
	publisher   event.Publisher
	metrics     service.MetricsRecorder
	baseBackoff time.Duration
	maxBackoff  time.Duration
	lease       time.Duration
	sweepBatch  int
	logger      *slog.Logger
}

// JobRunnerParams holds dependencies for JobRunner, injected by Fx.
type JobRunnerParams struct {
	fx.In

	JobRepo   repository.JobRepository
	Handlers  map[string]usecase.JobHandler
	Publisher event.Publisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewJobRunner creates the runner that executes claimed jobs with the registered handlers.
func NewJobRunner(params JobRunnerParams) usecase.JobRunner {
	return &jobRunner{
		jobRepo:     params.JobRepo,
		handlers:    params.Handlers,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		baseBackoff: params.Config.Jobs.BaseBackoff,
		maxBackoff:  params.Config.Jobs.MaxBackoff,
		lease:       params.Config.Jobs.Lease,
		sweepBatch:  params.Config.Jobs.SweepBatch,
		logger:      params.Logger,
	}
}

// Process claims the job and runs one attempt. Handler failures are recorded on the job row and do not
// surface as errors, so transports acknowledge the message; only storage failures are returned.
func (r *jobRunner) Process(ctx context.Context, jobID uuid.UUID) error {
	now := time.Now()
	job, err := r.jobRepo.ClaimJob(ctx, jobID, now, now.Add(r.lease))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotClaimable) || errors.Is(err, repository.ErrJobNotFound) {
			r.logger.Debug("[Worker] Job not claimable",
				slog.String("job_id", jobID.String()),
				slog.Any("reason", err),
			)

			return nil
		}

		return errors.Wrap(err, "failed to claim job")
	}

	logger := r.logger.With(
		slog.String("job_id", job.ID.String()),
		slog.String("name", job.Name),
		slog.Int("attempt", job.Attempts),
	)

	runErr := r.run(ctx, job)
	if runErr == nil {
		if err := r.jobRepo.MarkSucceeded(ctx, job.ID); err != nil {
			return errors.Wrap(err, "failed to mark job succeeded")
		}
		r.metrics.JobFinished(job.Name, service.OutcomeSuccess)
		logger.Info("[Worker] Job succeeded")

		return nil
	}

	if errors.Is(runErr, service.ErrPermanentJobFailure) || job.Exhausted() {
		if err := r.jobRepo.MarkDead(ctx, job.ID, runErr.Error()); err != nil {
			return errors.Wrap(err, "failed to mark job dead")
		}
		r.metrics.JobFinished(job.Name, service.OutcomeDead)
		logger.Error("[Worker] Job dead-lettered", slog.Any("error", runErr))

		publishCommitted(ctx, r.publisher, logger, []event.Event{event.JobDeadLettered{
			JobID:          job.ID,
			Name:           job.Name,
			IdempotencyKey: job.IdempotencyKey,
			LastError:      runErr.Error(),
		}})

		return nil
	}

	delay := r.backoff(job.Attempts)
	if err := r.jobRepo.ScheduleRetry(ctx, job.ID, time.Now().Add(delay), runErr.Error()); err != nil {
		return errors.Wrap(err, "failed to schedule job retry")
	}
	r.metrics.JobFinished(job.Name, service.OutcomeRetry)
	logger.Warn("[Worker] Job failed, retry scheduled",
		slog.Duration("delay", delay),
		slog.Any("error", runErr),
	)

	return nil
}

func (r *jobRunner) run(ctx context.Context, job *entity.Job) (err error) {
	handler, ok := r.handlers[job.Name]
	if !ok {
		return errors.Wrapf(service.ErrPermanentJobFailure, "no handler registered for %s", job.Name)
	}

	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("job handler panicked: %v", p)
		}
	}()

	return handler(ctx, job)
}

// backoff is base·2^(attempt-1), capped at the configured maximum.
func (r *jobRunner) backoff(attempt int) time.Duration {
	delay := r.baseBackoff
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= r.maxBackoff {
			return r.maxBackoff
		}
	}

	return min(delay, r.maxBackoff)
}

// RunDue processes every due job, including running jobs whose lease expired.
func (r *jobRunner) RunDue(ctx context.Context) (int, error) {
	ids, err := r.jobRepo.FindDueJobIDs(ctx, time.Now(), r.sweepBatch)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due jobs")
	}

	var (
		processed int
		errs      error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			return processed, errors.Join(errs, ctx.Err())
		}
		if err := r.Process(ctx, id); err != nil {
			errs = errors.Join(errs, err)
		}
		processed++
	}

	return processed, errs
}
