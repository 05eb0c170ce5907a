package api

import (
	"log/slog"
	"net/http"

	"nexus/config"
	"nexus/internal/delivery"
	apimiddleware "nexus/internal/delivery/api/middleware"
	"nexus/internal/delivery/api/router"
	"nexus/internal/delivery/api/validator"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the marketplace API. Requests above HTTP.MaxRequestBodySize are refused
// before binding.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	middleware.Use(e, params.Logger, params.Cfg, params.RouterParams.Metrics)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := delivery.NewHTTPServer("api", e, params.Cfg, params.Logger, true)
	params.Lc.Append(fx.Hook{
		OnStop: srv.Stop,
	})

	return srv, nil
}
