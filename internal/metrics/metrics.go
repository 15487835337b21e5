package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	TokenExchangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_token_exchanges_total",
			Help: "Total number of authorization code exchanges against the provider token endpoint",
		},
		[]string{"outcome"},
	)

	ProfileFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_profile_fetches_total",
			Help: "Total number of user-info fetches against the provider API",
		},
		[]string{"outcome"},
	)
)
