package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"streamgearhub/cmd/api/metrics"
)

// RequestMetrics records per-request counters and latency histograms.
// The route template (c.FullPath) is used as the path label so that
// /api/v1/posts/:slug does not explode label cardinality.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}
