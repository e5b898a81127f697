package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/infra/metrics"
)

// MetricsMiddleware records per-request Prometheus metrics.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle counts the request and observes its latency. The endpoint label
// uses the route pattern, not the raw path, to keep cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.RequestsInProgress.Inc()
		start := time.Now()

		err := next(c)

		endpoint := c.Path()
		if endpoint == "" {
			endpoint = c.Request().URL.Path
		}
		method := c.Request().Method

		// The central error handler has not run yet when an error escapes
		// the chain, so derive the status the handler will use.
		status := c.Response().Status
		if err != nil {
			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			default:
				status = http.StatusInternalServerError
			}
		}

		m.metrics.RequestsInProgress.Dec()
		m.metrics.RequestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
		statusCode := strconv.Itoa(status)
		m.metrics.RequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
		if status >= http.StatusBadRequest {
			m.metrics.RequestErrors.WithLabelValues(method, endpoint, statusCode).Inc()
		}

		return err
	}
}
