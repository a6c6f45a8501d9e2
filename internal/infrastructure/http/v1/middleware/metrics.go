package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/infrastructure/metrics"
)

// Metrics middleware records request counts and latencies.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}
