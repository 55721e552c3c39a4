package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/xlab-open/datachain/registry"
)

// Collector records registry operation metrics. It is safe for concurrent
// use; all state lives in Prometheus vectors.
type Collector struct {
	registrationsTotal   *prometheus.CounterVec
	unregistrationsTotal *prometheus.CounterVec
	lookupsTotal         *prometheus.CounterVec
	createsTotal         *prometheus.CounterVec
	createDuration       *prometheus.HistogramVec
	registrySize         *prometheus.GaugeVec

	logger *zap.Logger
}

// Compile-time interface compliance check.
var _ registry.Instrumentation = (*Collector)(nil)

// NewCollector creates a Collector whose metrics are registered on the
// default Prometheus registerer under the given namespace.
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_registrations_total",
			Help:      "Total number of successful registrations",
		},
		[]string{"registry"},
	)

	c.unregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_unregistrations_total",
			Help:      "Total number of successful unregistrations",
		},
		[]string{"registry"},
	)

	c.lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_lookups_total",
			Help:      "Total number of lookups by outcome",
		},
		[]string{"registry", "result"},
	)

	c.createsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_creates_total",
			Help:      "Total number of instantiation attempts by status",
		},
		[]string{"registry", "name", "status"},
	)

	c.createDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "registry_create_duration_seconds",
			Help:      "Instantiation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"registry", "name"},
	)

	c.registrySize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_size",
			Help:      "Current number of live records",
		},
		[]string{"registry"},
	)

	return c
}

// RecordRegistration counts a successful registration.
func (c *Collector) RecordRegistration(reg, name string) {
	c.registrationsTotal.WithLabelValues(reg).Inc()
}

// RecordUnregister counts a successful unregistration.
func (c *Collector) RecordUnregister(reg, name string) {
	c.unregistrationsTotal.WithLabelValues(reg).Inc()
}

// RecordLookup counts a lookup with its outcome.
func (c *Collector) RecordLookup(reg string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.lookupsTotal.WithLabelValues(reg, result).Inc()
}

// RecordCreate counts an instantiation attempt and observes its latency.
func (c *Collector) RecordCreate(reg, name, status string, elapsed time.Duration) {
	c.createsTotal.WithLabelValues(reg, name, status).Inc()
	c.createDuration.WithLabelValues(reg, name).Observe(elapsed.Seconds())
}

// SetSize tracks the live record count.
func (c *Collector) SetSize(reg string, size int) {
	c.registrySize.WithLabelValues(reg).Set(float64(size))
}
