package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zentigrity",
		Subsystem: "submission",
		Name:      "grievances_total",
		Help:      "Count of grievance submissions by final blockchain status.",
	}, []string{"blockchain_status"})
	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zentigrity",
		Subsystem: "submission",
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of the full submission pipeline.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 180},
	}, []string{"blockchain_status"})
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zentigrity",
		Subsystem: "submission",
		Name:      "resolutions_total",
		Help:      "Count of resolution transactions by outcome.",
	}, []string{"status"})
	resolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zentigrity",
		Subsystem: "submission",
		Name:      "resolution_duration_seconds",
		Help:      "Duration of resolution transaction broadcasts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Submission tracks metrics for the grievance submission pipeline.
type Submission struct{}

// NewSubmission constructs a metrics collector for the submission pipeline.
func NewSubmission() *Submission {
	return &Submission{}
}

// ObserveSubmission records one completed pipeline run.
func (m Submission) ObserveSubmission(status model.BlockchainStatus, started time.Time) {
	submissionsTotal.WithLabelValues(string(status)).Inc()
	submissionDuration.WithLabelValues(string(status)).Observe(time.Since(started).Seconds())
}

// ObserveResolution records one resolution transaction attempt.
func (m Submission) ObserveResolution(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	resolutionsTotal.WithLabelValues(status).Inc()
	resolutionDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
