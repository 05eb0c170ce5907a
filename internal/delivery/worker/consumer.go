package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"nexus/config"
	"nexus/internal/delivery"
	"nexus/internal/delivery/worker/handler"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/service"
	"nexus/internal/infra/pubsub"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const consumerTag = "nexus-worker"

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Runner usecase.JobRunner
}

// rabbitMQConsumer runs jobs announced on the broker queue.
// Unreadable messages go to the dead letter queue; a failed run is requeued once.
type rabbitMQConsumer struct {
	cfg    *config.RabbitMQConfig
	logger *slog.Logger
	runner usecase.JobRunner

	ctx    context.Context
	cancel context.CancelFunc
	broker *pubsub.RabbitMQ
}

// disabledDelivery stands in for a transport that is not configured.
type disabledDelivery struct {
	logger *slog.Logger
	name   string
}

func (d disabledDelivery) Serve(ctx context.Context) error {
	d.logger.InfoContext(ctx, "[Worker] Delivery disabled", slog.String("delivery", d.name))

	return nil
}

// NewConsumer returns the RabbitMQ consumer when the job transport is rabbitmq.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return disabledDelivery{logger: params.Logger, name: "rabbitmq consumer"}, nil
	}
	if params.Cfg.RabbitMQ == nil || params.Cfg.RabbitMQ.URL == "" {
		return nil, errors.New("rabbitmq url is required for rabbitmq provider")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &rabbitMQConsumer{
		cfg:    params.Cfg.RabbitMQ,
		logger: params.Logger,
		runner: params.Runner,
		ctx:    ctx,
		cancel: cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve consumes until the worker stops or the broker closes the channel.
func (c *rabbitMQConsumer) Serve(_ context.Context) error {
	broker, err := pubsub.NewRabbitMQ(c.cfg)
	if err != nil {
		return err
	}
	c.broker = broker

	if err := broker.Channel.Qos(c.cfg.PrefetchCount, 0, false); err != nil {
		return errors.Wrap(err, "failed to set rabbitmq prefetch")
	}

	deliveries, err := broker.Channel.ConsumeWithContext(c.ctx, c.cfg.Queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "failed to consume job queue")
	}

	c.logger.Info("Starting RabbitMQ job consumer",
		slog.String("queue", c.cfg.Queue),
		slog.Int("prefetch", c.cfg.PrefetchCount),
	)

	for {
		select {
		case <-c.ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if c.ctx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			c.handle(c.ctx, d)
		}
	}
}

func (c *rabbitMQConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var msg service.JobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.logger.ErrorContext(ctx, "[Worker] Unreadable job message, dead-lettering", slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	jobID, err := uuid.Parse(msg.JobID)
	if err != nil {
		c.logger.ErrorContext(ctx, "[Worker] Job message without a valid job id", slog.String("job_id", msg.JobID))
		_ = d.Nack(false, false)

		return
	}
	if msg.RequestID == "" {
		msg.RequestID = d.CorrelationId
	}

	jobCtx, reqLogger := handler.WithJobTrace(ctx, c.logger, &msg)

	if err := c.runner.Process(jobCtx, jobID); err != nil {
		reqLogger.ErrorContext(jobCtx, "[Worker] Failed to process job",
			slog.String("job_name", msg.Name),
			slog.Bool("redelivered", d.Redelivered),
			slog.Any("error", err),
		)
		// The job row stays due, so the sweeper retries it after the message is dropped.
		_ = d.Nack(false, !d.Redelivered)

		return
	}

	_ = d.Ack(false)
}

func (c *rabbitMQConsumer) stop(context.Context) error {
	c.logger.Info("Stopping RabbitMQ job consumer")
	c.cancel()
	if c.broker != nil {
		c.broker.Close()
	}

	return nil
}
