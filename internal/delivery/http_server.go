package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"nexus/config"
	"nexus/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

// HTTPServer runs an echo instance until Stop. The API and worker processes each own one.
type HTTPServer struct {
	name   string
	addr   string
	h2c    bool
	idle   http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// NewHTTPServer applies the configured timeouts to e. With h2c set, cleartext HTTP/2 is accepted
// next to HTTP/1.1.
func NewHTTPServer(name string, e *echo.Echo, cfg *config.Config, logger *slog.Logger, h2c bool) *HTTPServer {
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	return &HTTPServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		h2c:    h2c,
		idle:   http2.Server{IdleTimeout: cfg.HTTP.Timeouts.IdleTimeout},
		echo:   e,
		logger: logger,
	}
}

// Serve blocks until the listener fails or Stop is called.
func (s *HTTPServer) Serve(_ context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("server", s.name), slog.String("host_port", s.addr))

	var err error
	if s.h2c {
		err = s.echo.StartH2CServer(s.addr, &s.idle)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

// Stop drains in-flight requests within lifecycle.DefaultTimeout.
func (s *HTTPServer) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(ctx))
}
