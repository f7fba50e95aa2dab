package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aidetect_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes end-to-end request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "aidetect_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// InferenceDuration observes the latency of a single model forward pass,
// including time spent waiting for an inference slot.
var InferenceDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "aidetect_inference_duration_seconds",
		Help:    "Model inference latency in seconds.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
)

// InferenceErrors counts classification calls that failed at inference time.
var InferenceErrors = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "aidetect_inference_errors_total",
		Help: "Total number of failed inference calls.",
	},
)
