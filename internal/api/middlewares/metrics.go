package middlewares

import (
	"time"

	"devconnector/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics middleware records request counts and latency per route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
