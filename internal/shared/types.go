package shared

import "context"

// ContextKey là kiểu key riêng cho context.WithValue, tránh đụng key string của package khác
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyClientIP  ContextKey = "client_ip"
)

// Gin context keys (c.Set / c.GetString)
const (
	GinKeyRequestID = "request_id"
	GinKeyClientIP  = "client_ip"
)

// HeaderRequestID được nhận từ proxy nếu có, ngược lại tự sinh
const HeaderRequestID = "X-Request-Id"

// RequestIDFromContext trả về "" nếu request không đi qua middleware RequestID
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
