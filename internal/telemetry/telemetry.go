// Package telemetry exposes the Prometheus metrics of the aggregator.
//
// Metrics are registered on the default registry at package load; the
// /metrics endpoint serves them through [MetricsHandler]. Two sides are
// instrumented: inbound HTTP traffic (counted by the logging middleware) and
// outbound tracking-site requests (observed by the adapter per resource).
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for upstream request metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vesselwatch_http_requests_total",
			Help: "Inbound HTTP requests by method, path and status code.",
		},
		[]string{"method", "path", "code"},
	)

	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vesselwatch_upstream_requests_total",
			Help: "Outbound tracking-site requests by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)

	upstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vesselwatch_upstream_request_duration_seconds",
			Help:    "Latency of outbound tracking-site requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		upstreamRequestsTotal,
		upstreamRequestDuration,
	)
}

// ObserveHTTPRequest counts one served inbound request.
func ObserveHTTPRequest(method, path string, code int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(code)).Inc()
}

// ObserveUpstreamRequest records one outbound tracking-site request.
func ObserveUpstreamRequest(resource, outcome string, elapsed time.Duration) {
	upstreamRequestsTotal.WithLabelValues(resource, outcome).Inc()
	upstreamRequestDuration.WithLabelValues(resource, outcome).Observe(elapsed.Seconds())
}

// MetricsHandler returns the handler serving the default registry in the
// Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
