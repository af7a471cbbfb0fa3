package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	snapshots   *prometheus.CounterVec
	phaseErrors *prometheus.CounterVec
	lastPrice   *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		snapshots: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketcontext_snapshots_total",
				Help: "Snapshot captures by outcome (full, quotes_only, absent)",
			},
			[]string{"outcome"},
		),
		phaseErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketcontext_phase_errors_total",
				Help: "Degraded or failed aggregation phases",
			},
			[]string{"phase"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketcontext_last_index_price",
				Help: "Last observed price per tracked index",
			},
			[]string{"index"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketcontext_fetch_duration_seconds",
				Help:    "Duration of provider fetch phases in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"phase"},
		),
	}
}

// RecordSnapshot records a snapshot capture outcome.
func (r *Recorder) RecordSnapshot(outcome string) {
	r.snapshots.WithLabelValues(outcome).Inc()
}

// RecordPhaseError records a degraded aggregation phase.
func (r *Recorder) RecordPhaseError(phase string) {
	r.phaseErrors.WithLabelValues(phase).Inc()
}

// RecordLastPrice records the last observed price for an index.
func (r *Recorder) RecordLastPrice(index string, price float64) {
	r.lastPrice.WithLabelValues(index).Set(price)
}

// RecordLatency records fetch phase latency in seconds.
func (r *Recorder) RecordLatency(phase string, seconds float64) {
	r.latency.WithLabelValues(phase).Observe(seconds)
}
