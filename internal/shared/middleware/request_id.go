package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"webflow-forms-backend/internal/shared"
)

const maxRequestIDLength = 128

// RequestID giữ X-Request-Id từ proxy (nếu hợp lệ), ngược lại sinh UUID mới
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(shared.HeaderRequestID))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(shared.GinKeyRequestID, id)
		c.Header(shared.HeaderRequestID, id)

		ctx := context.WithValue(c.Request.Context(), shared.ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
