package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Degradation stages.
const (
	StageClassification = "classification"
	StageSynthesis      = "synthesis"
)

// DefaultNamespace prefixes every metric of the service.
const DefaultNamespace = "agent_discovery"

// Session events.
const (
	EventCreated   = "created"
	EventEvicted   = "evicted"
	EventReset     = "reset"
	EventCompleted = "completed"
)

// Metrics groups all Prometheus instruments used by the service.
// Every instance owns its registry so several can coexist in one process.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ActiveSessions prometheus.Gauge
	SessionEvents  *prometheus.CounterVec
	Turns          *prometheus.CounterVec
	Degraded       *prometheus.CounterVec
	RateLimited    prometheus.Counter
	TurnLatency    prometheus.Histogram
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of discovery sessions held in memory.",
		}),
		SessionEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Session lifecycle events by type.",
		}, []string{"event"}),
		Turns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Handled turns by classified intent and outcome.",
		}, []string{"intent", "outcome"}),
		Degraded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_total",
			Help:      "Completion-dependent stages that fell back to rules or skeletons.",
		}, []string{"stage"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Turns rejected by the per-owner rate limiter.",
		}),
		TurnLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "turn_latency_ms",
			Help:      "End-to-end turn handling latency in milliseconds.",
			Buckets:   []float64{5, 25, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
	}
}

func (m *Metrics) SessionEvent(event string) {
	if m == nil {
		return
	}
	m.SessionEvents.WithLabelValues(event).Inc()
	switch event {
	case EventCreated:
		m.ActiveSessions.Inc()
	case EventEvicted:
		m.ActiveSessions.Dec()
	}
}

func (m *Metrics) SessionsEvicted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SessionEvents.WithLabelValues(EventEvicted).Add(float64(n))
	m.ActiveSessions.Sub(float64(n))
}

func (m *Metrics) DegradedStage(stage string) {
	if m == nil {
		return
	}
	m.Degraded.WithLabelValues(stage).Inc()
}

func (m *Metrics) TurnHandled(intent, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Turns.WithLabelValues(intent, outcome).Inc()
	m.TurnLatency.Observe(float64(d.Milliseconds()))
}

func (m *Metrics) RateLimitHit() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// Handler exposes this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
