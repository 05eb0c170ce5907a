package main

import (
	"context"
	"log/slog"
	"os"

	"nexus/config"
	"nexus/internal/delivery"
	"nexus/internal/delivery/api"
	"nexus/internal/delivery/api/middleware"
	"nexus/internal/delivery/api/router/handler"
	"nexus/internal/domain/event"
	"nexus/internal/infra/auth"
	"nexus/internal/infra/gateway"
	logs "nexus/internal/infra/log"
	"nexus/internal/infra/media"
	"nexus/internal/infra/metrics"
	"nexus/internal/infra/notification"
	"nexus/internal/infra/persistence/postgres"
	"nexus/internal/infra/policy"
	"nexus/internal/infra/pubsub"
	"nexus/internal/infra/qrcode"
	"nexus/internal/infra/random"
	eventhandler "nexus/internal/usecase/handler"
	"nexus/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			eventhandler.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			event.NewBus,
			func(b *event.Bus) event.Publisher { return b },
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewCatalogRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewLedgerRepository,
			postgres.NewRiderRepository,
			postgres.NewDeliveryTaskRepository,
			postgres.NewPayoutRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewJobRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			random.NewSource,
			policy.New,
			qrcode.NewQRCodeServiceFromConfig,
			notification.NewFirebaseService,
			gateway.NewPaymentGateway,
			media.NewHTTPProcessor,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewJobQueue,
			impl.NewLedgerService,
			impl.NewAddressService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewRiderService,
			impl.NewDispatchService,
			impl.NewFulfillmentService,
			impl.NewPayoutService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewFulfillmentHandler,
			handler.NewPaymentHandler,
			handler.NewRiderHandler,
			handler.NewPayoutHandler,
			handler.NewOperatorHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
