package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics is the collection of Prometheus metrics describing one run.
// They live on a private registry so a push delivers benchgate series only.
type Metrics struct {
	registry *prometheus.Registry

	SamplesLoaded  *prometheus.CounterVec
	UnknownUnits   prometheus.Counter
	RowsByOutcome  *prometheus.CounterVec
	CompareSeconds prometheus.Histogram
	LastRun        prometheus.Gauge
}

// NewMetrics creates and registers all run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.SamplesLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchgate_samples_total",
			Help: "Normalized samples aggregated from the input documents",
		},
		[]string{"side"},
	)

	m.UnknownUnits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "benchgate_unknown_units_total",
			Help: "Entries whose score unit passed through unconverted",
		},
	)

	m.RowsByOutcome = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchgate_rows_total",
			Help: "Report rows by classification outcome",
		},
		[]string{"outcome"},
	)

	m.CompareSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "benchgate_compare_duration_seconds",
			Help:    "Wall time of the compare pipeline",
			Buckets: prometheus.DefBuckets,
		},
	)

	m.LastRun = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		},
	)

	m.registry.MustRegister(
		m.SamplesLoaded,
		m.UnknownUnits,
		m.RowsByOutcome,
		m.CompareSeconds,
		m.LastRun,
	)

	return m
}

// Push delivers the registry to a Pushgateway. The tool exits after each
// run, so push replaces a scrape endpoint; callers log failures and move on.
func (m *Metrics) Push(gateway, job string) error {
	return push.New(gateway, job).Gatherer(m.registry).Add()
}
