package worker

import (
	"log/slog"
	"net/http"

	"nexus/config"
	"nexus/internal/delivery"
	"nexus/internal/delivery/middleware"
	"nexus/internal/delivery/worker/handler"
	"nexus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Metrics     *metrics.Metrics
}

// NewServer exposes the Pub/Sub push endpoint, health and metrics.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	middleware.Use(e, params.Logger, params.Cfg, params.Metrics)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}
	e.POST("/push", params.PushHandler.HandlePush)

	srv := delivery.NewHTTPServer("worker", e, params.Cfg, params.Logger, false)
	params.Lc.Append(fx.Hook{
		OnStop: srv.Stop,
	})

	return srv, nil
}
