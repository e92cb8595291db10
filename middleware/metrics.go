package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/services/metrics"
)

// Metrics records request counts and latency by matched route
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		collector.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
