package binder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus decode metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "querykit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for decode duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus decode metrics.
type MetricsOption func(*MetricsConfig)

// WithMetricsNamespace sets the metrics namespace.
func WithMetricsNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithMetricsSubsystem sets the metrics subsystem.
func WithMetricsSubsystem(subsystem string) MetricsOption {
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

// WithBuckets sets the histogram buckets.
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

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "querykit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics collects decode metrics for binder middleware. One collector can
// be shared across the binders of every namespace on a server.
//
// Metrics collected:
//   - querykit_decodes_total: counter of decodes by query namespace and status
//   - querykit_decode_duration_seconds: histogram of decode duration by namespace
//   - querykit_coercion_failures_total: counter of integer-coercion failures
type Metrics struct {
	decodesTotal     *prometheus.CounterVec
	decodeDuration   *prometheus.HistogramVec
	coercionFailures *prometheus.CounterVec
}

// NewMetrics creates and registers the decode metrics.
//
// Example:
//
//	m := binder.NewMetrics(binder.WithMetricsNamespace("myapp"))
//	r.Use(binder.Middleware(cfg, binder.WithMetrics(m)))
//	http.Handle("/metrics", promhttp.Handler())
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	return &Metrics{
		decodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "decodes_total",
			Help:        "Total number of query string decodes",
			ConstLabels: config.ConstLabels,
		}, []string{"query_namespace", "status"}),

		decodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "decode_duration_seconds",
			Help:        "Query string decode duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"query_namespace"}),

		coercionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "coercion_failures_total",
			Help:        "Total number of integer coercion failures during decode",
			ConstLabels: config.ConstLabels,
		}, []string{"query_namespace"}),
	}
}

// recordDecode records one decode outcome.
func (m *Metrics) recordDecode(namespace string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "coercion_error"
		m.coercionFailures.WithLabelValues(namespace).Inc()
	}
	m.decodesTotal.WithLabelValues(namespace, status).Inc()
	m.decodeDuration.WithLabelValues(namespace).Observe(duration.Seconds())
}
