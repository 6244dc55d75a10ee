package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"manualrag/src/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, reusing the caller's
// X-Request-ID when present, and logs its outcome.
func RequestLogger() gin.HandlerFunc {
	logger := log.WithName("http")

	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		keysAndValues := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.Last(), "request failed", keysAndValues...)
			return
		}
		logger.Info("request handled", keysAndValues...)
	}
}

// NewRouter returns a gin engine with recovery, request logging, CORS for
// any origin and all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), cors.Default())
	h.RegisterRoutes(r)
	return r
}
