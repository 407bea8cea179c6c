package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusNone labels stages that have never been executed.
const StatusNone = "None"

// Recorder collects dashboard metrics into a private registry.
type Recorder struct {
	registry      *prometheus.Registry
	stageStatus   *prometheus.GaugeVec
	fetchErrors   *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stageStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stagedash_stage_status",
				Help: "Latest execution status of each pipeline stage (1 for the current status)",
			},
			[]string{"pipeline", "stage", "status"},
		),
		fetchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stagedash_fetch_errors_total",
				Help: "Total number of failed pipeline source calls",
			},
			[]string{"source"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stagedash_fetch_duration_seconds",
				Help:    "Duration of pipeline source calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
	r.registry.MustRegister(r.stageStatus, r.fetchErrors, r.fetchDuration)
	return r
}

// ObserveStages replaces the status series of pipeline with the given stages.
func (r *Recorder) ObserveStages(pipeline string, stages []domain.Stage) {
	r.stageStatus.DeletePartialMatch(prometheus.Labels{"pipeline": pipeline})
	for _, st := range stages {
		status := st.StatusText()
		if st.Latest == nil {
			status = StatusNone
		}
		r.stageStatus.WithLabelValues(pipeline, st.Name, status).Set(1)
	}
}

// ObserveFetch records the latency of one source call.
func (r *Recorder) ObserveFetch(source string, d time.Duration) {
	r.fetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

// FetchFailed counts one failed source call.
func (r *Recorder) FetchFailed(source string) {
	r.fetchErrors.WithLabelValues(source).Inc()
}

// Registry returns the registry holding the dashboard metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry to path for the node exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
