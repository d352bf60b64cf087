package ui

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fatalview/internal"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID (or propagates the caller's)
// so access-log lines can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// AccessLog logs one line per request with the request ID, status and
// latency.
func AccessLog() gin.HandlerFunc {
	accessLogger := internal.NewLogger("AccessLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := c.Get("request_id")
		accessLogger.Info("%s %s -> %d (%.2fms) id=%v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			float64(time.Since(start).Nanoseconds())/1e6, requestID)
	}
}
