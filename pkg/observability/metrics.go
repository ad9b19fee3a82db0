package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records enrichment runs in a dedicated prometheus registry.
type Metrics struct {
	registry  *prometheus.Registry
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	nodes     *prometheus.GaugeVec
	declared  *prometheus.GaugeVec
	inherited *prometheus.GaugeVec
	orphans   *prometheus.GaugeVec
}

// NewMetrics creates and registers the dendro collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dendro_enrich_runs_total",
				Help: "Total number of enrichment runs by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dendro_enrich_duration_seconds",
				Help:    "Duration of enrichment runs",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
		nodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dendro_taxonomy_nodes",
				Help: "Number of nodes in the last enriched taxonomy",
			},
			[]string{"taxonomy"},
		),
		declared: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dendro_declared_nodes",
				Help: "Number of nodes with a marker declaration",
			},
			[]string{"taxonomy"},
		),
		inherited: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dendro_inherited_markers",
				Help: "Marker ids gained from ancestors across all declared nodes",
			},
			[]string{"taxonomy"},
		),
		orphans: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dendro_orphan_nodes",
				Help: "Declared nodes missing from the taxonomy",
			},
			[]string{"taxonomy"},
		),
	}
	m.registry.MustRegister(m.runs, m.duration, m.nodes, m.declared, m.inherited, m.orphans)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			m.runs.WithLabelValues("success").Inc()
			m.duration.Observe(e.Duration.Seconds())
			m.nodes.WithLabelValues(e.Taxonomy).Set(float64(e.Nodes))
			m.declared.WithLabelValues(e.Taxonomy).Set(float64(e.Declared))
			m.inherited.WithLabelValues(e.Taxonomy).Set(float64(e.Inherited))
			m.orphans.WithLabelValues(e.Taxonomy).Set(float64(e.Orphans))
		},
		OnRunFailed: func(ctx context.Context, e *domain.RunEvent) {
			m.runs.WithLabelValues("failure").Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}

// WriteToTextfile dumps the collected metrics in the text exposition format.
// The write is atomic, as the node exporter textfile collector expects.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
