package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome("number", "registered")
	m.IncrementOutcome("number", "registered")
	m.IncrementTallyCache("hit")
	m.IncrementWrite("spam_report")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupOutcome.WithLabelValues("number", "registered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TallyCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Writes.WithLabelValues("spam_report")))
}

func TestLatencyHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveLookupLatency("name", 20*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.LookupLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome("number", "not_found")
		m.ObserveLookupLatency("number", time.Millisecond)
		m.IncrementTallyCache("miss")
		m.IncrementWrite("contact")
	})
}
