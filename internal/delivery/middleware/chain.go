package middleware

import (
	"log/slog"

	"nexus/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Use installs the middleware both processes share. Order matters: panics are recovered first,
// the request id exists before anything logs, and metrics run inside the logger so the status
// they record already reflects handled errors.
func Use(e *echo.Echo, logger *slog.Logger, cfg *config.Config, observer HTTPObserver) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(NewMetricsMiddleware(observer).Handle)
}
