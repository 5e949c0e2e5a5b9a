package middleware

import (
	"strconv"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template. Unmatched
// paths share one label so scanners cannot grow the series set.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordAPIRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
