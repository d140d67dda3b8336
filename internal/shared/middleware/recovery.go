package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"webflow-forms-backend/internal/shared"
	"webflow-forms-backend/internal/shared/response"
)

// Recovery bắt panic trong handler và trả 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(shared.GinKeyRequestID)).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Msg("💥 Panic recovered")

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
