package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cardoctor"

// Gate and authorization outcomes.
const (
	OutcomeMissing   = "missing"
	OutcomeInvalid   = "invalid"
	OutcomeOK        = "ok"
	OutcomeForbidden = "forbidden"
	OutcomeScoped    = "scoped"
	OutcomeUnscoped  = "unscoped"
)

type Metrics struct {
	registry *prometheus.Registry

	GateOutcomes  *prometheus.CounterVec
	AuthzOutcomes *prometheus.CounterVec
	Requests      *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		GateOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_gate_total",
			Help:      "Session token checks by outcome.",
		}, []string{"outcome"}),
		AuthzOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_total",
			Help:      "Identity authorization checks by outcome.",
		}, []string{"outcome"}),
		Requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.GateOutcomes,
		m.AuthzOutcomes,
		m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Gate(outcome string) {
	if m == nil {
		return
	}
	m.GateOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Authz(outcome string) {
	if m == nil {
		return
	}
	m.AuthzOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
