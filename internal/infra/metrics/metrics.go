// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the registration and login counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	// SourceAPI marks flows entering through the HTTP API, the only
	// ingress today.
	SourceAPI = "api"
)

// Metrics holds the collectors for the HTTP layer and the credential flows.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestErrors      *prometheus.CounterVec
	RequestLatency     *prometheus.HistogramVec
	RequestsInProgress prometheus.Gauge
	Registrations      *prometheus.CounterVec
	Logins             *prometheus.CounterVec

	registry *prometheus.Registry
}

// New builds the metric set on its own registry so tests can create
// independent instances without duplicate-registration panics.
func New() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		}, []string{"method", "endpoint", "status_code"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_latency_seconds",
			Help: "HTTP request latency in seconds",
		}, []string{"method", "endpoint"}),
		RequestsInProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests in progress",
		}),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of user registrations",
		}, []string{"source", "status"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of user logins",
		}, []string{"source", "status"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestErrors,
		m.RequestLatency,
		m.RequestsInProgress,
		m.Registrations,
		m.Logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the exposition endpoint for this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
