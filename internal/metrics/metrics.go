package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth gate outcomes
const (
	OutcomeAllowed = "allowed"
	OutcomeMissing = "missing"
	OutcomeInvalid = "invalid"
)

// Metrics holds the HTTP and auth collectors registered on one registry.
type Metrics struct {
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	gate       *prometheus.CounterVec
	tokens     prometheus.Counter
	storeFails *prometheus.CounterVec
	signFails  prometheus.Counter
}

// New registers the collectors on reg. Passing nil creates a private registry,
// which keeps tests from colliding on the default one.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devconnector_http_requests_total", Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "devconnector_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gate: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devconnector_auth_gate_decisions_total", Help: "Auth gate decisions by outcome",
		}, []string{"outcome"}),
		tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "devconnector_tokens_issued_total", Help: "Session tokens issued",
		}),
		storeFails: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devconnector_store_errors_total", Help: "Credential store failures by operation",
		}, []string{"operation"}),
		signFails: factory.NewCounter(prometheus.CounterOpts{
			Name: "devconnector_token_sign_errors_total", Help: "Session tokens that could not be signed",
		}),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// GateDecision counts one auth gate outcome.
func (m *Metrics) GateDecision(outcome string) {
	m.gate.WithLabelValues(outcome).Inc()
}

func (m *Metrics) TokenIssued() {
	m.tokens.Inc()
}

func (m *Metrics) StoreError(operation string) {
	m.storeFails.WithLabelValues(operation).Inc()
}

func (m *Metrics) TokenSignError() {
	m.signFails.Inc()
}
