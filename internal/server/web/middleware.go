package web

import (
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/logging"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request after the handler has run.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
