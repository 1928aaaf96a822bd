package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// Metrics returns a middleware that records HTTP metrics
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics, health and stream endpoints
		if m == nil || metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		// Use route pattern, not actual path
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedRoute
		}
		m.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
