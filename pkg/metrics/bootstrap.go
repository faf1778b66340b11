package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BootstrapMetrics records startup outcomes: which resolution step produced
// the connection string and how long the reference-data seed took.
type BootstrapMetrics struct {
	resolution *prometheus.CounterVec
	seed       prometheus.Histogram
}

// NewBootstrapMetrics registers the bootstrap metrics on the provided registerer.
func NewBootstrapMetrics(reg prometheus.Registerer) *BootstrapMetrics {
	if reg == nil {
		return &BootstrapMetrics{}
	}
	resolution := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bootstrap_resolution_total",
		Help: "Connection string resolutions by source and outcome.",
	}, []string{"source", "outcome"})
	seed := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bootstrap_seed_duration_seconds",
		Help:    "Duration of the reference data seed in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(resolution, seed)
	return &BootstrapMetrics{
		resolution: resolution,
		seed:       seed,
	}
}

// ObserveResolution counts one resolution attempt for the given source.
func (b *BootstrapMetrics) ObserveResolution(source string, ok bool) {
	if b == nil || b.resolution == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	b.resolution.WithLabelValues(source, outcome).Inc()
}

// TimeSeed runs the seed function and records its duration.
func (b *BootstrapMetrics) TimeSeed(fn func() error) error {
	start := time.Now()
	err := fn()
	if b != nil && b.seed != nil {
		b.seed.Observe(time.Since(start).Seconds())
	}
	return err
}
