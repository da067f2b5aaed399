package middleware

import (
	"strconv"
	"time"

	"biblioteca-backend/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records the request counter and latency histogram. Unmatched
// routes fall back to the raw path so they still get counted.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
