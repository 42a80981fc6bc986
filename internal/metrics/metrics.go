// SPDX-License-Identifier: MIT

// Package metrics collects per-run sector statistics and exports them in
// the Prometheus text format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/record"
)

const defaultNamespace = "sectormap"

// Config contains metrics configuration.
type Config struct {
	// Namespace of every metric; empty selects "sectormap".
	Namespace string
	// ConstLabels are added to every metric, e.g. image and analysis method.
	ConstLabels map[string]string
}

// Registry holds the metrics of one run.
type Registry struct {
	reg        *prometheus.Registry
	sectors    *prometheus.CounterVec
	randomness prometheus.Histogram
	bytes      prometheus.Counter
	duration   prometheus.Gauge
	started    time.Time
}

// New creates the metrics and registers them on a private registry.
func New(cfg Config) (*Registry, error) {
	ns := cfg.Namespace
	if ns == "" {
		ns = defaultNamespace
	}
	constLabels := prometheus.Labels(cfg.ConstLabels)

	m := &Registry{reg: prometheus.NewRegistry(), started: time.Now()}
	m.sectors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "sectors_total",
		Help:        "Number of classified sectors by result flag.",
		ConstLabels: constLabels,
	}, []string{"flag"})
	m.randomness = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   ns,
		Name:        "sector_randomness",
		Help:        "Distribution of sector randomness scores.",
		Buckets:     prometheus.LinearBuckets(0, 0.125, 9),
		ConstLabels: constLabels,
	})
	m.bytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "bytes_total",
		Help:        "Number of classified bytes.",
		ConstLabels: constLabels,
	})
	m.duration = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   ns,
		Name:        "run_duration_seconds",
		Help:        "Wall time of the run.",
		ConstLabels: constLabels,
	})

	for _, c := range []prometheus.Collector{m.sectors, m.randomness, m.bytes, m.duration} {
		if err := m.reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics.New: %w", err)
		}
	}
	for f := analysis.None; f.Valid(); f++ {
		m.sectors.WithLabelValues(f.String()).Add(0)
	}
	return m, nil
}

// Observe accounts one record of sectorSize bytes.
func (m *Registry) Observe(r record.Record, sectorSize int) {
	m.sectors.WithLabelValues(r.Flag.String()).Inc()
	m.randomness.Observe(r.Randomness)
	m.bytes.Add(float64(sectorSize))
}

// WriteFile stamps the run duration and writes every metric to path.
func (m *Registry) WriteFile(path string) error {
	m.duration.Set(time.Since(m.started).Seconds())
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("metrics.WriteFile: %w", err)
	}
	return nil
}

// Gatherer exposes the underlying registry.
func (m *Registry) Gatherer() prometheus.Gatherer { return m.reg }
