package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"webflow-forms-backend/internal/shared"
	"webflow-forms-backend/internal/shared/utils"
)

// ClientIPMiddleware lấy IP thật của client (CF-Connecting-IP, X-Forwarded-For, ...)
// và gắn vào cả gin context lẫn request context
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c.Request)

		c.Set(shared.GinKeyClientIP, clientIP)

		// Sau Cloudflare/proxy mà vẫn ra IP nội bộ → thiếu header forward
		if utils.IsPrivateIP(clientIP) {
			log.Debug().
				Str("ip", clientIP).
				Str("path", c.Request.URL.Path).
				Msg("Client IP is private or loopback")
		}

		ctx := context.WithValue(c.Request.Context(), shared.ContextKeyClientIP, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext trả về "" nếu middleware chưa chạy
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(shared.ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}
