package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "unibase_http_requests_total", Help: "HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "unibase_http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "unibase_rate_limited_total", Help: "Requests rejected by the rate limiter"},
		[]string{"route"},
	)
	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "unibase_auth_failures_total", Help: "Rejected bearer tokens by verification status"},
		[]string{"reason"},
	)
	MediaUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "unibase_media_uploads_total", Help: "Media uploads by outcome"},
		[]string{"outcome"},
	)
)

var once sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequests, HTTPDuration, RateLimited, AuthFailures, MediaUploads)
	})
}
