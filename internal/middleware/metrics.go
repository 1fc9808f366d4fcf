package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-tool-service/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records count, latency and in-flight requests per route template.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.TrackInFlight()
		defer done()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metrics.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
