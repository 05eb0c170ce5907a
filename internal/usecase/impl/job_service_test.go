package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJobsConfig() *config.Config {
	return &config.Config{Jobs: &config.JobsConfig{
		MaxAttempts: 3,
		BaseBackoff: time.Second,
		MaxBackoff:  5 * time.Second,
		SweepBatch:  10,
		Lease:       time.Minute,
	}}
}

func TestJobQueue_Enqueue(t *testing.T) {
	t.Run("new job is stored and published", func(t *testing.T) {
		jobRepo := mockRepo.NewMockJobRepository(t)
		publisher := mockSvc.NewMockJobPublisher(t)
		queue := NewJobQueue(jobRepo, publisher, newJobsConfig(), newDiscardLogger())

		ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
		notificationID := uuid.New()

		jobRepo.EXPECT().
			EnqueueJob(ctx, mock.MatchedBy(func(job *entity.Job) bool {
				var payload usecase.NotificationPushPayload

				return job.Name == "notification.push" &&
					job.IdempotencyKey == "key-1" &&
					job.Status == entity.JobQueued &&
					job.MaxAttempts == 3 &&
					json.Unmarshal(job.Payload, &payload) == nil &&
					payload.NotificationID == notificationID
			})).
			RunAndReturn(func(_ context.Context, job *entity.Job) (*entity.Job, bool, error) { return job, true, nil }).
			Once()
		publisher.EXPECT().
			PublishJob(ctx, mock.MatchedBy(func(msg *service.JobMessage) bool {
				return msg.RequestID == "req-1" && msg.Name == "notification.push" && msg.Attempt == 0
			})).
			Return(nil).
			Once()

		job, err := queue.Enqueue(ctx, "notification.push", "key-1", usecase.NotificationPushPayload{NotificationID: notificationID})

		require.NoError(t, err)
		assert.Equal(t, entity.JobQueued, job.Status)
	})

	t.Run("finished duplicate is not republished", func(t *testing.T) {
		jobRepo := mockRepo.NewMockJobRepository(t)
		publisher := mockSvc.NewMockJobPublisher(t)
		queue := NewJobQueue(jobRepo, publisher, newJobsConfig(), newDiscardLogger())

		existing := &entity.Job{ID: uuid.New(), Name: "notification.push", Status: entity.JobSucceeded}
		jobRepo.EXPECT().EnqueueJob(mock.Anything, mock.Anything).Return(existing, false, nil).Once()

		job, err := queue.Enqueue(context.Background(), "notification.push", "key-1", struct{}{})

		require.NoError(t, err)
		assert.Same(t, existing, job)
	})

	t.Run("publish failure leaves the job queued", func(t *testing.T) {
		jobRepo := mockRepo.NewMockJobRepository(t)
		publisher := mockSvc.NewMockJobPublisher(t)
		queue := NewJobQueue(jobRepo, publisher, newJobsConfig(), newDiscardLogger())

		jobRepo.EXPECT().
			EnqueueJob(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, job *entity.Job) (*entity.Job, bool, error) { return job, true, nil }).
			Once()
		publisher.EXPECT().PublishJob(mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()

		job, err := queue.Enqueue(context.Background(), "dispatch.assign_pending", "k", usecase.AssignPendingPayload{Limit: 20})

		require.NoError(t, err)
		assert.Equal(t, entity.JobQueued, job.Status)
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		queue := NewJobQueue(mockRepo.NewMockJobRepository(t), mockSvc.NewMockJobPublisher(t), newJobsConfig(), newDiscardLogger())

		_, err := queue.Enqueue(context.Background(), "x", "k", make(chan int))

		require.Error(t, err)
	})
}

type jobRunnerFixtures struct {
	runner    usecase.JobRunner
	jobRepo   *mockRepo.MockJobRepository
	metrics   *mockSvc.MockMetricsRecorder
	publisher *recordingPublisher
}

func createTestJobRunner(t *testing.T, handlers map[string]usecase.JobHandler) jobRunnerFixtures {
	fx := jobRunnerFixtures{
		jobRepo:   mockRepo.NewMockJobRepository(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
		publisher: &recordingPublisher{},
	}

	fx.runner = NewJobRunner(JobRunnerParams{
		JobRepo:   fx.jobRepo,
		Handlers:  handlers,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
		Config:    newJobsConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func claimedJob(name string, attempts int) *entity.Job {
	return &entity.Job{
		ID:          uuid.New(),
		Name:        name,
		Status:      entity.JobRunning,
		Attempts:    attempts,
		MaxAttempts: 3,
	}
}

func TestJobRunner_Process(t *testing.T) {
	failing := func(err error) map[string]usecase.JobHandler {
		return map[string]usecase.JobHandler{
			"work": func(context.Context, *entity.Job) error { return err },
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(nil))
		job := claimedJob("work", 1)
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().MarkSucceeded(mock.Anything, job.ID).Return(nil).Once()
		fx.metrics.EXPECT().JobFinished("work", service.OutcomeSuccess).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
	})

	t.Run("transient failure is retried with backoff", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(errors.New("timeout")))
		job := claimedJob("work", 2)
		before := time.Now()
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().
			ScheduleRetry(mock.Anything, job.ID, mock.MatchedBy(func(next time.Time) bool {
				return !next.Before(before.Add(2*time.Second)) && next.Before(before.Add(3*time.Second))
			}), "timeout").
			Return(nil).
			Once()
		fx.metrics.EXPECT().JobFinished("work", service.OutcomeRetry).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
		assert.Empty(t, fx.publisher.names())
	})

	t.Run("exhausted job is dead-lettered", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(errors.New("timeout")))
		job := claimedJob("work", 3)
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().MarkDead(mock.Anything, job.ID, "timeout").Return(nil).Once()
		fx.metrics.EXPECT().JobFinished("work", service.OutcomeDead).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
		require.Equal(t, []string{event.NameJobDeadLettered}, fx.publisher.names())
		dead, _ := fx.publisher.events[0].(event.JobDeadLettered)
		assert.Equal(t, job.ID, dead.JobID)
		assert.Equal(t, "timeout", dead.LastError)
	})

	t.Run("permanent failure skips retries", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(errors.Wrap(service.ErrPermanentJobFailure, "bad payload")))
		job := claimedJob("work", 1)
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().MarkDead(mock.Anything, job.ID, mock.Anything).Return(nil).Once()
		fx.metrics.EXPECT().JobFinished("work", service.OutcomeDead).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
	})

	t.Run("unknown job name is permanent", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(nil))
		job := claimedJob("unknown", 1)
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().MarkDead(mock.Anything, job.ID, mock.Anything).Return(nil).Once()
		fx.metrics.EXPECT().JobFinished("unknown", service.OutcomeDead).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
	})

	t.Run("panicking handler is retried", func(t *testing.T) {
		fx := createTestJobRunner(t, map[string]usecase.JobHandler{
			"work": func(context.Context, *entity.Job) error { panic("nil map") },
		})
		job := claimedJob("work", 1)
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, job.ID, mock.Anything, mock.Anything).Return(job, nil).Once()
		fx.jobRepo.EXPECT().ScheduleRetry(mock.Anything, job.ID, mock.Anything, "job handler panicked: nil map").Return(nil).Once()
		fx.metrics.EXPECT().JobFinished("work", service.OutcomeRetry).Once()

		require.NoError(t, fx.runner.Process(context.Background(), job.ID))
	})

	t.Run("claimed elsewhere", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(nil))
		id := uuid.New()
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, id, mock.Anything, mock.Anything).Return(nil, repository.ErrJobNotClaimable).Once()

		require.NoError(t, fx.runner.Process(context.Background(), id))
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		fx := createTestJobRunner(t, failing(nil))
		id := uuid.New()
		fx.jobRepo.EXPECT().ClaimJob(mock.Anything, id, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		require.Error(t, fx.runner.Process(context.Background(), id))
	})
}

func TestJobRunner_Backoff(t *testing.T) {
	r := &jobRunner{baseBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, r.backoff(1))
	assert.Equal(t, 2*time.Second, r.backoff(2))
	assert.Equal(t, 4*time.Second, r.backoff(3))
	assert.Equal(t, 5*time.Second, r.backoff(4))
	assert.Equal(t, 5*time.Second, r.backoff(30))
}

func TestJobRunner_RunDue(t *testing.T) {
	fx := createTestJobRunner(t, map[string]usecase.JobHandler{
		"work": func(context.Context, *entity.Job) error { return nil },
	})
	first, second := claimedJob("work", 1), claimedJob("work", 1)

	fx.jobRepo.EXPECT().FindDueJobIDs(mock.Anything, mock.Anything, 10).Return([]uuid.UUID{first.ID, second.ID}, nil).Once()
	fx.jobRepo.EXPECT().ClaimJob(mock.Anything, first.ID, mock.Anything, mock.Anything).Return(first, nil).Once()
	fx.jobRepo.EXPECT().ClaimJob(mock.Anything, second.ID, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	fx.jobRepo.EXPECT().MarkSucceeded(mock.Anything, first.ID).Return(nil).Once()
	fx.metrics.EXPECT().JobFinished("work", service.OutcomeSuccess).Once()

	n, err := fx.runner.RunDue(context.Background())

	assert.Equal(t, 2, n)
	require.Error(t, err)
}
