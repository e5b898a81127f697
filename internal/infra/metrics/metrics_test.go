package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	first := New()
	second := New()

	first.RequestsInProgress.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.RequestsInProgress))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.RequestsInProgress))
}

func TestCredentialCounters_SourceAndStatusLabels(t *testing.T) {
	m := New()

	m.Registrations.WithLabelValues(SourceAPI, OutcomeSuccess).Inc()
	m.Registrations.WithLabelValues(SourceAPI, OutcomeFailure).Inc()
	m.Registrations.WithLabelValues(SourceAPI, OutcomeFailure).Inc()
	m.Logins.WithLabelValues(SourceAPI, OutcomeSuccess).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(SourceAPI, OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues(SourceAPI, OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues(SourceAPI, OutcomeSuccess)))
}

func TestHandler_ExposesAllCollectors(t *testing.T) {
	m := New()

	m.RequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	m.RequestErrors.WithLabelValues("GET", "/profile", "401").Inc()
	m.RequestLatency.WithLabelValues("GET", "/health").Observe(0.01)
	m.Registrations.WithLabelValues(SourceAPI, OutcomeSuccess).Inc()
	m.Logins.WithLabelValues(SourceAPI, OutcomeFailure).Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/health",method="GET",status_code="200"} 1`)
	assert.Contains(t, body, `http_request_errors_total{endpoint="/profile",method="GET",status_code="401"} 1`)
	assert.Contains(t, body, `user_registrations_total{source="api",status="success"} 1`)
	assert.Contains(t, body, `user_logins_total{source="api",status="failure"} 1`)
	assert.Contains(t, body, "http_request_latency_seconds_bucket")
}
