// Package pubsub publishes job messages to the worker through the configured transport.
package pubsub

import (
	"context"
	"log/slog"

	"nexus/config"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sweeperOnly stands in when no transport is configured. Jobs are still durable rows, so the
// worker's sweeper runs them once they are due.
type sweeperOnly struct {
	logger *slog.Logger
}

func (p *sweeperOnly) PublishJob(ctx context.Context, msg *service.JobMessage) error {
	p.logger.DebugContext(ctx, "no job transport, deferring to sweeper",
		slog.String("job_id", msg.JobID),
		slog.String("job_name", msg.Name),
	)

	return nil
}

func (p *sweeperOnly) Close() error { return nil }

type publisherFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.JobPublisher, error)

//nolint:gochecknoglobals
var factories = map[string]publisherFactory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.Config, logger *slog.Logger) (service.JobPublisher, error) {
		if cfg.PubSub.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.PubSub.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.JobPublisher, error) {
		if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
	},
	constants.PubSubProviderRabbitMQ: func(_ context.Context, cfg *config.Config, logger *slog.Logger) (service.JobPublisher, error) {
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" {
			return nil, errors.New("rabbitmq.url is required for the rabbitmq provider")
		}

		return NewRabbitMQPublisher(cfg.RabbitMQ, logger)
	},
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewJobPublisher picks the transport named by pubsub.provider. An empty provider is valid.
func NewJobPublisher(params PublisherParams) (service.JobPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("job transport disabled, sweeper only")

		return &sweeperOnly{logger: params.Logger}, nil
	}

	factory, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := factory(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("job transport ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewJobPublisher),
)
