package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for lookups and spam tallies.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Lookup outcomes by kind ("name", "number") and branch
	LookupOutcome *prometheus.CounterVec

	// End-to-end lookup latency by kind
	LookupLatency *prometheus.HistogramVec

	// Tally cache results: "hit", "miss", "error", "stale"
	TallyCache *prometheus.CounterVec

	// Writes by kind ("contact", "spam_report")
	Writes *prometheus.CounterVec
}

// New registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idcaller_lookup_outcomes_total",
			Help: "Total lookups by kind and resolution branch",
		}, []string{"kind", "outcome"}),

		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idcaller_lookup_duration_seconds",
			Help:    "Duration of lookups including spam tally fan-out",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),

		TallyCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idcaller_spam_tally_cache_total",
			Help: "Spam tally cache lookups by result",
		}, []string{"result"}),

		Writes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idcaller_writes_total",
			Help: "Rows written by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncrementOutcome(kind, outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(kind, outcome).Inc()
	}
}

func (m *Metrics) ObserveLookupLatency(kind string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementTallyCache(result string) {
	if m != nil {
		m.TallyCache.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementWrite(kind string) {
	if m != nil {
		m.Writes.WithLabelValues(kind).Inc()
	}
}
