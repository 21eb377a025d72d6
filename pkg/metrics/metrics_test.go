package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New("discovery")
	b := New("discovery")

	a.DegradedStage(StageClassification)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Degraded.WithLabelValues(StageClassification)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Degraded.WithLabelValues(StageClassification)))
}

func TestSessionEvents_TrackActiveGauge(t *testing.T) {
	m := New("discovery")

	m.SessionEvent(EventCreated)
	m.SessionEvent(EventCreated)
	m.SessionEvent(EventCreated)
	m.SessionsEvicted(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionEvents.WithLabelValues(EventEvicted)))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionEvent(EventCreated)
		m.SessionsEvicted(3)
		m.DegradedStage(StageSynthesis)
		m.TurnHandled("fill_slot", "ok", time.Millisecond)
		m.RateLimitHit()
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("discovery")
	m.TurnHandled("create_agent", "ok", 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `discovery_turns_total{intent="create_agent",outcome="ok"} 1`))
}
