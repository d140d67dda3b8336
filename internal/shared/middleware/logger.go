package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"webflow-forms-backend/internal/shared"
)

// Logger ghi một dòng cho mỗi request; 4xx → warn, 5xx → error
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		// Health check bị gọi liên tục bởi load balancer
		if strings.HasSuffix(path, "/api/health") && status == http.StatusOK {
			event = log.Debug()
		}

		event.
			Str("request_id", c.GetString(shared.GinKeyRequestID)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.GetString(shared.GinKeyClientIP)).
			Msg("HTTP Request")
	}
}
