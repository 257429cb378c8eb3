package handler

import (
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of successfully processed orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order processing attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being processed",
		},
	)
)

var (
	paymentRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "payments",
			Name:      "requests_total",
			Help:      "Total number of checkout operations by outcome",
		},
		[]string{"operation", "result"},
	)

	paymentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "payments",
			Name:      "request_duration_seconds",
			Help:      "Histogram of checkout operation durations, gateway calls included",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var (
	validationsPassed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "validation",
			Name:      "payment_orders_valid_total",
			Help:      "Total number of payment orders that passed validation",
		},
	)

	validationFieldErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "validation",
			Name:      "field_errors_total",
			Help:      "Total number of rejected fields",
		},
		[]string{"field"},
	)

	totalsMismatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "validation",
			Name:      "totals_mismatch_total",
			Help:      "Total number of carts whose totals did not match the items",
		},
		[]string{"field"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProcessed,
		ordersFailed,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,

		paymentRequestsTotal,
		paymentRequestDuration,

		validationsPassed,
		validationFieldErrors,
		totalsMismatches,
	)
}

type CacheStats interface {
	Stats() cache.Stats
	Size() int
}

// RegisterCacheMetrics exports the counters of a cache under the given name,
// values are read on scrape.
func RegisterCacheMetrics(name string, c CacheStats) {
	labels := prometheus.Labels{"cache": name}
	counter := func(metric, help string, value func(cache.Stats) uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   "checkout_service",
			Subsystem:   "cache",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return float64(value(c.Stats())) })
	}

	prometheus.MustRegister(
		counter("hits_total", "Total number of cache hits", func(s cache.Stats) uint64 { return s.Hits }),
		counter("misses_total", "Total number of cache misses", func(s cache.Stats) uint64 { return s.Misses }),
		counter("evictions_total", "Total number of entries evicted over capacity", func(s cache.Stats) uint64 { return s.Evictions }),
		counter("expired_total", "Total number of entries dropped after ttl", func(s cache.Stats) uint64 { return s.Expired }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "checkout_service",
			Subsystem:   "cache",
			Name:        "entries",
			Help:        "Current number of cache entries",
			ConstLabels: labels,
		}, func() float64 { return float64(c.Size()) }),
	)
}

// CheckoutMetrics reports validator outcomes to Prometheus.
type CheckoutMetrics struct{}

func (CheckoutMetrics) ValidationPassed() {
	validationsPassed.Inc()
}

func (CheckoutMetrics) ValidationFailed(field string) {
	validationFieldErrors.WithLabelValues(field).Inc()
}

func (CheckoutMetrics) TotalsMismatch(field string) {
	totalsMismatches.WithLabelValues(field).Inc()
}
