package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CMS upstream metrics
	CMSRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_requests_total",
			Help: "Total number of requests made to the CMS",
		},
		[]string{"resource", "status"},
	)

	AffiliateLinksRewritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "affiliate_links_rewritten_total",
			Help: "Total number of outbound links stamped with the affiliate tag",
		},
	)
)
