package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRedirectURL(t *testing.T) {
	assert.Equal(t, "/guestbook?success=true&id=4", RedirectURL("/guestbook", "success", "true", "id", "4"))
	assert.Equal(t, "/p?x=1&message=a+b%26c", RedirectURL("/p?x=1", "message", "a b&c"))
	assert.Equal(t, "/p", RedirectURL("/p"))
}

func TestCacheBuster(t *testing.T) {
	assert.Equal(t, "1000", CacheBuster(time.Unix(1, 0)))
}

func TestRedirectError_DefaultMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/x", nil)

	RedirectError(c, http.StatusSeeOther, "/timeline", "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/timeline?error=true&message=Unknown+error", w.Header().Get("Location"))
}

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Accept", "application/json")
	assert.True(t, WantsJSON(c))

	c.Request.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.False(t, WantsJSON(c))
}
