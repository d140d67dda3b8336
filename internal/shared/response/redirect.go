package response

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RedirectURL nối query params (theo đúng thứ tự key, value, key, value...) vào base.
// base có thể đã có query string sẵn.
func RedirectURL(base string, pairs ...string) string {
	var b strings.Builder
	b.WriteString(base)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(pairs[i]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pairs[i+1]))
		sep = "&"
	}
	return b.String()
}

// CacheBuster là giá trị "t" (unix millis) để trang Webflow không dùng bản cache
func CacheBuster(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// RedirectSuccess: <base>?success=true&<pairs>
func RedirectSuccess(c *gin.Context, status int, base string, pairs ...string) {
	c.Redirect(status, RedirectURL(base, append([]string{"success", "true"}, pairs...)...))
}

// RedirectError: <base>?error=true&message=<msg>&<pairs>
func RedirectError(c *gin.Context, status int, base, message string, pairs ...string) {
	if message == "" {
		message = "Unknown error"
	}
	c.Redirect(status, RedirectURL(base, append([]string{"error", "true", "message", message}, pairs...)...))
}

// RequestPath là URL tương đối của request hiện tại (không query), dùng làm redirect mặc định
func RequestPath(c *gin.Context) string {
	return c.Request.URL.Path
}
