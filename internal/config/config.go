package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Webflow WebflowConfig
	Forms   FormsConfig
	R2      R2Config
	Redis   RedisConfig
	Upload  UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string   // trace, debug, info, warn, error
	BasePath    string   // mount path khi chạy sau reverse proxy, ví dụ "/forms"
	CORSOrigins []string // "*" cho phép mọi origin
}

// =====================================================
// WEBFLOW CONFIGURATION
// =====================================================

type WebflowConfig struct {
	WriteToken        string
	ReadToken         string
	BaseURL           string // https://api.webflow.com/v2
	SiteID            string
	RequestsPerMinute int
	Timeout           time.Duration
}

// Token ưu tiên write token, fallback sang read token
func (w WebflowConfig) Token() string {
	if w.WriteToken != "" {
		return w.WriteToken
	}
	return w.ReadToken
}

// FormsConfig chứa collection IDs và redirect URLs của từng form
type FormsConfig struct {
	SiteURL string // https://<site>.webflow.io

	GuestbookCollectionID string
	TimelineCollectionID  string
	MemoryCollectionID    string

	GuestbookRedirectURL string
	TimelineRedirectURL  string // rỗng → redirect về path của request
	MemoryRedirectURL    string

	// Option IDs of the "memory-card-size" field
	MemoryCardSquareID    string
	MemoryCardPortraitID  string
	MemoryCardLandscapeID string
}

// =====================================================
// R2 (S3-COMPATIBLE) CONFIGURATION
// =====================================================

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string // <account>.r2.cloudflarestorage.com
	Region          string // auto
	UseSSL          bool
	PublicURL       string // R2_PUBLIC_URL hoặc R2_PUBLIC_DOMAIN
}

// Enabled: đủ credentials để upload lên R2
func (r R2Config) Enabled() bool {
	return r.AccessKeyID != "" && r.SecretAccessKey != "" && r.Bucket != "" && r.Endpoint != ""
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type UploadConfig struct {
	MaxFileSize      int64 // bytes, /api/images
	FormMaxFileSize  int64 // bytes, file gửi kèm form timeline/memory (nén trước khi lên Webflow)
	CompressAbove    int64 // bytes
	MaxDimension     int   // px
	AllowedMimeTypes []string
	PresignExpiry    time.Duration
	SessionTTL       time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	accountID := getEnv("R2_ACCOUNT_ID", "")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Webflow Forms API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", ""),
			BasePath:    normalizeBasePath(getEnv("COSMIC_MOUNT_PATH", "")),
			CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Webflow: WebflowConfig{
			WriteToken:        getEnv("WEBFLOW_CMS_SITE_API_TOKEN_WRITE", ""),
			ReadToken:         getEnv("WEBFLOW_CMS_SITE_API_TOKEN", ""),
			BaseURL:           webflowBaseURL(getEnv("WEBFLOW_API_HOST", "")),
			SiteID:            getEnv("WEBFLOW_SITE_ID", ""),
			RequestsPerMinute: getEnvInt("WEBFLOW_REQUESTS_PER_MINUTE", 60),
			Timeout:           getEnvDuration("WEBFLOW_TIMEOUT", 30*time.Second),
		},
		Forms: FormsConfig{
			SiteURL:               strings.TrimRight(getEnv("WEBFLOW_SITE_URL", "https://patricia-lanning.webflow.io"), "/"),
			GuestbookCollectionID: getEnv("GUESTBOOK_COLLECTION_ID", "69383a09bbf502930bf620a3"),
			TimelineCollectionID:  getEnv("TIMELINE_COLLECTION_ID", ""),
			MemoryCollectionID:    getEnv("MEMORY_JOURNAL_COLLECTION_ID", ""),
			GuestbookRedirectURL:  getEnv("GUESTBOOK_REDIRECT_URL", ""),
			TimelineRedirectURL:   getEnv("TIMELINE_REDIRECT_URL", ""),
			MemoryRedirectURL:     getEnv("MEMORY_REDIRECT_URL", ""),
			MemoryCardSquareID:    getEnv("MEMORY_CARD_SIZE_1X1_ID", "375ee74ef6f5816b9380663364279dfe"),
			MemoryCardPortraitID:  getEnv("MEMORY_CARD_SIZE_1X2_ID", "9dfbeb13c30a7c8c40996b86a9b8591a"),
			MemoryCardLandscapeID: getEnv("MEMORY_CARD_SIZE_2X1_ID", "418938b7e9fde5527405832f988389da"),
		},
		R2: R2Config{
			AccountID:       accountID,
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("R2_BUCKET_NAME", ""),
			Endpoint:        getEnv("R2_ENDPOINT", r2Endpoint(accountID)),
			Region:          getEnv("R2_REGION", "auto"),
			UseSSL:          getEnvBool("R2_USE_SSL", true),
			PublicURL:       strings.TrimRight(getEnv("R2_PUBLIC_URL", getEnv("R2_PUBLIC_DOMAIN", "")), "/"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Upload: UploadConfig{
			MaxFileSize:      int64(getEnvInt("UPLOAD_MAX_BYTES", 1536*1024)),   // 1.5MB
			FormMaxFileSize:  int64(getEnvInt("UPLOAD_FORM_MAX_BYTES", 10<<20)), // 10MB
			CompressAbove:    int64(getEnvInt("UPLOAD_COMPRESS_ABOVE_BYTES", 1024*1024)),
			MaxDimension:     getEnvInt("UPLOAD_MAX_DIMENSION", 1920),
			AllowedMimeTypes: getEnvList("UPLOAD_ALLOWED_TYPES", []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}),
			PresignExpiry:    getEnvDuration("UPLOAD_PRESIGN_EXPIRY", time.Hour),
			SessionTTL:       getEnvDuration("UPLOAD_SESSION_TTL", 24*time.Hour),
		},
	}

	if cfg.Forms.GuestbookRedirectURL == "" {
		cfg.Forms.GuestbookRedirectURL = cfg.Forms.SiteURL + "/guestbook"
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Webflow.RequestsPerMinute <= 0 {
		return fmt.Errorf("WEBFLOW_REQUESTS_PER_MINUTE must be positive")
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.Upload.FormMaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_FORM_MAX_BYTES must be positive")
	}

	// Production environment phải có Webflow token
	if c.App.Environment == "production" {
		if c.Webflow.Token() == "" {
			return fmt.Errorf("WEBFLOW_CMS_SITE_API_TOKEN_WRITE or WEBFLOW_CMS_SITE_API_TOKEN must be set in production")
		}

		// Các form còn lại chỉ warn: route trả lỗi rõ ràng khi thiếu config
		if c.Webflow.SiteID == "" {
			fmt.Println("WARNING: WEBFLOW_SITE_ID not set - timeline/memory image uploads will not work")
		}
		if !c.R2.Enabled() {
			fmt.Println("WARNING: R2 credentials not set - /api/images endpoints will not work")
		}
	}

	return nil
}

func webflowBaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	switch {
	case host == "":
		return "https://api.webflow.com/v2"
	case strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://"):
		return host
	default:
		return "https://" + host + "/v2"
	}
}

func r2Endpoint(accountID string) string {
	if accountID == "" {
		return ""
	}
	return accountID + ".r2.cloudflarestorage.com"
}

func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
