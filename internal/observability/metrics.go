// Package observability holds the Prometheus collectors shared by the API server.
// Collectors register with the default registry, which cmd/api serves at /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_map",
		Subsystem: "gateway",
		Name:      "writes_total",
		Help:      "Successful workout writes, labeled by operation and kind.",
	}, []string{"op", "kind"})

	validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_map",
		Subsystem: "gateway",
		Name:      "validation_failures_total",
		Help:      "Rejected workout writes, labeled by operation and offending field.",
	}, []string{"op", "field"})

	lastWriteGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_map",
		Subsystem: "gateway",
		Name:      "last_write_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful workout write.",
	})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workout_map",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, labeled by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(workoutWrites, validationFailures, lastWriteGauge, requestDuration)
}

// RecordWrite counts a successful create, update or delete.
func RecordWrite(op, kind string) {
	workoutWrites.WithLabelValues(op, kind).Inc()
	lastWriteGauge.Set(float64(time.Now().Unix()))
}

// RecordValidationFailure counts a write rejected by the entity rules.
func RecordValidationFailure(op, field string) {
	validationFailures.WithLabelValues(op, field).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func ObserveRequest(method, route, status string, d time.Duration) {
	requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
