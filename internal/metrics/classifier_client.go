package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classifierRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zentigrity",
		Subsystem: "classifier_client",
		Name:      "operations_total",
		Help:      "Count of classifier API operations.",
	}, []string{"operation", "status"})
	classifierRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zentigrity",
		Subsystem: "classifier_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of classifier API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	classifierFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zentigrity",
		Subsystem: "classifier_client",
		Name:      "fallbacks_total",
		Help:      "Count of classifications that degraded to the fallback result.",
	})
)

// ClassifierClient tracks metrics for calls to the image classification API.
type ClassifierClient struct{}

// NewClassifierClient constructs a metrics collector for classifier calls.
func NewClassifierClient() *ClassifierClient {
	return &ClassifierClient{}
}

// Observe records a single classifier call outcome and duration.
func (m ClassifierClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	classifierRequestsTotal.WithLabelValues(operation, status).Inc()
	classifierRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveFallback records a classification that substituted fallback values.
func (m ClassifierClient) ObserveFallback() {
	classifierFallbacksTotal.Inc()
}
