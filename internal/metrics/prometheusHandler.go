package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_sessions",
	Help: "Number of live sessions",
})

var metricValuesDetected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "metric_values_detected_total",
	Help: "Detected financial metric values labelled by metric name",
}, []string{"metric"})

var extractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "extraction_duration_seconds",
	Help:    "Time spent extracting an uploaded document.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"kind"})

var upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "upstream_latency_seconds",
	Help:    "Latency of language model round trips.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"provider"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementActiveSessions() {
	activeSessions.Inc()
}

func DecrementActiveSessions() {
	activeSessions.Dec()
}

func CountDetectedMetric(metric string, occurrences int) {
	metricValuesDetected.WithLabelValues(metric).Add(float64(occurrences))
}

func CaptureExtractionMetrics(kind string, timeElapsed time.Duration) {
	extractionDuration.WithLabelValues(kind).Observe(timeElapsed.Seconds())
}

func CaptureUpstreamMetrics(provider string, timeElapsed time.Duration) {
	upstreamLatency.WithLabelValues(provider).Observe(timeElapsed.Seconds())
}
