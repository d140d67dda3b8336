package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "", cfg.App.BasePath)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, "https://api.webflow.com/v2", cfg.Webflow.BaseURL)
	assert.Equal(t, 60, cfg.Webflow.RequestsPerMinute)
	assert.Equal(t, "69383a09bbf502930bf620a3", cfg.Forms.GuestbookCollectionID)
	assert.Equal(t, cfg.Forms.SiteURL+"/guestbook", cfg.Forms.GuestbookRedirectURL)
	assert.Equal(t, int64(1536*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, int64(10<<20), cfg.Upload.FormMaxFileSize)
	assert.Equal(t, time.Hour, cfg.Upload.PresignExpiry)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("COSMIC_MOUNT_PATH", "/forms/")
	t.Setenv("WEBFLOW_API_HOST", "api.example.test")
	t.Setenv("WEBFLOW_CMS_SITE_API_TOKEN", "read-token")
	t.Setenv("R2_ACCOUNT_ID", "acc123")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "images")
	t.Setenv("R2_PUBLIC_DOMAIN", "https://cdn.example.test/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("UPLOAD_PRESIGN_EXPIRY", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/forms", cfg.App.BasePath)
	assert.Equal(t, "https://api.example.test/v2", cfg.Webflow.BaseURL)
	assert.Equal(t, "read-token", cfg.Webflow.Token())
	assert.Equal(t, "acc123.r2.cloudflarestorage.com", cfg.R2.Endpoint)
	assert.Equal(t, "https://cdn.example.test", cfg.R2.PublicURL)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.App.CORSOrigins)
	assert.Equal(t, 15*time.Minute, cfg.Upload.PresignExpiry)
}

func TestWebflowConfig_TokenPrefersWrite(t *testing.T) {
	w := WebflowConfig{WriteToken: "w", ReadToken: "r"}
	assert.Equal(t, "w", w.Token())
}

func TestValidate_ProductionRequiresToken(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("WEBFLOW_CMS_SITE_API_TOKEN_WRITE", "")
	t.Setenv("WEBFLOW_CMS_SITE_API_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set in production")
}
