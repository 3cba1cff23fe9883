package remote

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "remote_requests_total",
		Help: "How many requests were sent to the remote API, partitioned by operation and status code.",
	},
	[]string{"operation", "code"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "remote_request_duration_seconds",
		Help: "The latencies of requests to the remote API in seconds.",
	},
	[]string{"operation"},
)

// Collectors returns the Prometheus metrics of the client.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{requestCount, requestDuration}
}

func observe(operation, code string, start time.Time) {
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	requestCount.WithLabelValues(operation, code).Inc()
}
