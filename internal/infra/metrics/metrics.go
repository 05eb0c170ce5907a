// Package metrics exposes Prometheus collectors for HTTP traffic and marketplace events.
package metrics

import (
	"net/http"
	"time"

	"nexus/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "nexus"

// Metrics owns every collector of the process.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	ordersPlaced      *prometheus.CounterVec
	orderTransitions  *prometheus.CounterVec
	paymentReconciled *prometheus.CounterVec
	gatewayCalls      *prometheus.CounterVec
	gatewayDuration   *prometheus.HistogramVec
	dispatchAttempts  *prometheus.CounterVec
	jobsFinished      *prometheus.CounterVec
	payoutRequests    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, together with the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(reg)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		ordersPlaced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_placed_total",
				Help:      "Orders assembled from carts, by initial payment method",
			},
			[]string{"method"},
		),
		orderTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_transitions_total",
				Help:      "Order status transitions",
			},
			[]string{"from", "to"},
		),
		paymentReconciled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_reconciliations_total",
				Help:      "Gateway confirmations by outcome",
			},
			[]string{"outcome"},
		),
		gatewayCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_calls_total",
				Help:      "Outbound payment gateway calls",
			},
			[]string{"operation", "outcome"},
		),
		gatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_call_duration_seconds",
				Help:      "Latency of outbound payment gateway calls",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		dispatchAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_attempts_total",
				Help:      "Rider auto-assignment attempts",
			},
			[]string{"outcome"},
		),
		jobsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "jobs_finished_total",
				Help:      "Background job runs by outcome",
			},
			[]string{"name", "outcome"},
		),
		payoutRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payout_requests_total",
				Help:      "Payout requests created, by beneficiary kind",
			},
			[]string{"kind"},
		),
	}
}

// Register adds an infrastructure collector, such as database pool stats, to the registry.
func (m *Metrics) Register(c prometheus.Collector) error {
	return m.registry.Register(c)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

func (m *Metrics) OrderPlaced(method string) {
	if method == "" {
		method = "none"
	}
	m.ordersPlaced.WithLabelValues(method).Inc()
}

func (m *Metrics) OrderTransition(from, to string) {
	m.orderTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) PaymentReconciled(outcome string) {
	m.paymentReconciled.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GatewayCall(operation, outcome string, elapsed time.Duration) {
	m.gatewayCalls.WithLabelValues(operation, outcome).Inc()
	m.gatewayDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) DispatchAttempt(outcome string) {
	m.dispatchAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) JobFinished(name, outcome string) {
	m.jobsFinished.WithLabelValues(name, outcome).Inc()
}

func (m *Metrics) PayoutRequested(kind string) {
	m.payoutRequests.WithLabelValues(kind).Inc()
}

// Module provides *Metrics and exposes it as the domain recorder.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.MetricsRecorder { return m },
	),
)
