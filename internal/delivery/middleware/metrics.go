package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records served requests.
type HTTPObserver interface {
	ObserveHTTP(method, path, status string, elapsed time.Duration)
}

// MetricsMiddleware feeds request counts and latencies to the observer, labelled by route pattern.
type MetricsMiddleware struct {
	observer HTTPObserver
}

func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle must run inside LoggerMiddleware so the status reflects handled errors.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			c.Error(err)
			status = c.Response().Status
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.observer.ObserveHTTP(c.Request().Method, path, strconv.Itoa(status), time.Since(start))

		return nil
	}
}
