package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rados4y/statex/pkg/statex"
)

// MetricsConfig configures the Prometheus coordinator decorator.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "statex").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus coordinator decorator.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "statex",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metricsCoordinator struct {
	next statex.Coordinator

	dirtyTotal    *prometheus.CounterVec
	flushDuration prometheus.Histogram
}

// Metrics wraps a coordinator so that every dirty registration is
// counted per field key and flush latency is observed. Field keys are
// diagnostic labels; keep them low-cardinality when metrics are on.
func Metrics(next statex.Coordinator, opts ...MetricsOption) statex.Coordinator {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &metricsCoordinator{
		next: next,
		dirtyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "dirty_total",
			Help:        "Number of dirty registrations handed to the coordinator, per field key.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"field"}),
		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Time spent flushing a dirty field, including listener notification.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// AddDirty implements statex.Coordinator.
func (m *metricsCoordinator) AddDirty(f *statex.Field) {
	m.dirtyTotal.WithLabelValues(f.Key()).Inc()
	start := time.Now()
	m.next.AddDirty(f)
	m.flushDuration.Observe(time.Since(start).Seconds())
}
