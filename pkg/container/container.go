package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"webflow-forms-backend/internal/config"
	infraCache "webflow-forms-backend/internal/infrastructure/cache"
	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/media"
	"webflow-forms-backend/internal/shared/sequence"
	"webflow-forms-backend/pkg/cache"
	"webflow-forms-backend/pkg/logger"

	cmsHandler "webflow-forms-backend/internal/domains/cms/handler"
	cmsService "webflow-forms-backend/internal/domains/cms/service"
	guestbookHandler "webflow-forms-backend/internal/domains/guestbook/handler"
	guestbookService "webflow-forms-backend/internal/domains/guestbook/service"
	imageHandler "webflow-forms-backend/internal/domains/image/handler"
	imageService "webflow-forms-backend/internal/domains/image/service"
	memoryHandler "webflow-forms-backend/internal/domains/memory/handler"
	memoryService "webflow-forms-backend/internal/domains/memory/service"
	timelineHandler "webflow-forms-backend/internal/domains/timeline/handler"
	timelineService "webflow-forms-backend/internal/domains/timeline/service"
	sessionHandler "webflow-forms-backend/internal/domains/uploadsession/handler"
	sessionRepo "webflow-forms-backend/internal/domains/uploadsession/repository"
	sessionService "webflow-forms-backend/internal/domains/uploadsession/service"
	widgetHandler "webflow-forms-backend/internal/domains/widget/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config  *config.Config
	Webflow *webflow.Client
	Redis   *infraCache.RedisClient // nil khi chạy bằng in-memory cache
	Cache   cache.Cache
	R2      *storage.R2Storage // nil khi chưa cấu hình R2

	Processor     *storage.ImageProcessor // /api/images, giới hạn UPLOAD_MAX_BYTES
	FormProcessor *storage.ImageProcessor // file kèm form, nén trước khi lên Webflow Assets
	Assets        *media.AssetAttacher
	Sequence      *sequence.Allocator

	// ========================================
	// SERVICE LAYER
	// ========================================
	GuestbookService     guestbookService.ServiceInterface
	TimelineService      timelineService.ServiceInterface
	MemoryService        memoryService.ServiceInterface
	ImageService         imageService.ServiceInterface
	UploadSessionService sessionService.ServiceInterface
	CMSService           cmsService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	GuestbookHandler     *guestbookHandler.GuestbookHandler
	TimelineHandler      *timelineHandler.TimelineHandler
	MemoryHandler        *memoryHandler.MemoryHandler
	ImageHandler         *imageHandler.ImageHandler
	UploadSessionHandler *sessionHandler.UploadSessionHandler
	CMSHandler           *cmsHandler.CMSHandler
	WidgetHandler        *widgetHandler.WidgetHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (Webflow client, Redis/in-memory cache, R2)
// 3. Shared helpers (allocator, image processor, asset attacher)
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE INFRASTRUCTURE
	// ========================================
	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to init infrastructure: %w", err)
	}

	// ========================================
	// STEP 3: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 4: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	// ----------------------------------------
	// WEBFLOW CLIENT
	// ----------------------------------------
	c.Webflow = webflow.NewClient(cfg.Webflow)
	if !c.Webflow.HasToken() {
		log.Println("⚠️  Webflow API token not set - form routes will return configuration errors")
	}

	// ----------------------------------------
	// CACHE (Redis → fallback in-memory)
	// ----------------------------------------
	c.Cache = c.connectCache()

	// ----------------------------------------
	// R2 STORAGE (optional)
	// ----------------------------------------
	if cfg.R2.Enabled() {
		log.Println("🪣 Connecting to R2...")
		r2, err := storage.NewR2Storage(cfg.R2)
		if err != nil {
			return fmt.Errorf("failed to init R2 storage: %w", err)
		}
		c.R2 = r2
		log.Printf("✅ R2 storage ready (bucket: %s)", cfg.R2.Bucket)
	} else {
		log.Println("⚠️  R2 not configured - /api/images endpoints disabled")
	}

	// ----------------------------------------
	// SHARED HELPERS
	// ----------------------------------------
	c.Processor = storage.NewImageProcessor(
		cfg.Upload.MaxFileSize,
		cfg.Upload.CompressAbove,
		cfg.Upload.MaxDimension,
	)
	c.FormProcessor = storage.NewImageProcessor(
		cfg.Upload.FormMaxFileSize,
		cfg.Upload.CompressAbove,
		cfg.Upload.MaxDimension,
	)
	c.Assets = media.NewAssetAttacher(c.Webflow, cfg.Webflow.SiteID, c.FormProcessor)
	c.Sequence = sequence.NewAllocator(c.Webflow)

	return nil
}

// connectCache thử Redis trước; Redis lỗi không critical vì chỉ upload session dùng cache
func (c *Container) connectCache() cache.Cache {
	cfg := c.Config.Redis
	if cfg.Host == "" {
		log.Println("⚠️  REDIS_HOST empty - using in-memory cache")
		return cache.NewMemoryCache()
	}

	log.Println("🔴 Connecting to Redis...")
	client := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical), using in-memory cache: %v", err)
		_ = client.Close()
		return cache.NewMemoryCache()
	}

	c.Redis = client
	log.Println("✅ Redis connected")
	return infraCache.NewRedisCache(client.Client, "forms:")
}

func (c *Container) initServices() {
	cfg := c.Config
	hasWrite := cfg.Webflow.WriteToken != ""
	hasRead := cfg.Webflow.ReadToken != ""

	// ----------------------------------------
	// UPLOAD SESSION SERVICE
	// ----------------------------------------
	// Interface nil (không phải *R2Storage nil) khi R2 tắt
	var remover sessionService.ObjectRemover
	var store imageService.ObjectStore
	if c.R2 != nil {
		remover = c.R2
		store = c.R2
	}

	c.UploadSessionService = sessionService.NewUploadSessionService(
		sessionRepo.NewCacheRepository(c.Cache),
		remover,
		cfg.Upload.SessionTTL,
	)

	// ----------------------------------------
	// FORM SERVICES
	// ----------------------------------------
	c.GuestbookService = guestbookService.NewGuestbookService(
		c.Webflow,
		c.Sequence,
		cfg.Forms.GuestbookCollectionID,
		c.Webflow.HasToken(),
	)

	c.TimelineService = timelineService.NewTimelineService(
		c.Webflow,
		c.Assets,
		c.Sequence,
		c.UploadSessionService, // SessionLoader
		timelineService.Config{
			CollectionID:  cfg.Forms.TimelineCollectionID,
			SiteID:        cfg.Webflow.SiteID,
			HasWriteToken: hasWrite,
			HasReadToken:  hasRead,
		},
	)

	c.MemoryService = memoryService.NewMemoryService(
		c.Webflow,
		c.Assets,
		c.Sequence,
		memoryService.Config{
			CollectionID:  cfg.Forms.MemoryCollectionID,
			SiteID:        cfg.Webflow.SiteID,
			HasWriteToken: hasWrite,
			HasReadToken:  hasRead,
			CardOptions: storage.CardSizeOptions{
				Square:    cfg.Forms.MemoryCardSquareID,
				Portrait:  cfg.Forms.MemoryCardPortraitID,
				Landscape: cfg.Forms.MemoryCardLandscapeID,
			},
		},
	)

	// ----------------------------------------
	// IMAGE + CMS SERVICES
	// ----------------------------------------
	c.ImageService = imageService.NewImageService(
		store,
		c.Processor,
		c.UploadSessionService, // SessionRecorder
		imageService.Config{
			AllowedTypes:  cfg.Upload.AllowedMimeTypes,
			MaxFileSize:   cfg.Upload.MaxFileSize,
			PresignExpiry: cfg.Upload.PresignExpiry,
		},
	)

	c.CMSService = cmsService.NewCMSService(c.Webflow, c.Webflow.HasToken())
}

func (c *Container) initHandlers() {
	forms := c.Config.Forms
	formMaxFileSize := c.Config.Upload.FormMaxFileSize

	c.GuestbookHandler = guestbookHandler.NewGuestbookHandler(c.GuestbookService, forms.GuestbookRedirectURL)
	c.TimelineHandler = timelineHandler.NewTimelineHandler(c.TimelineService, forms.TimelineRedirectURL, formMaxFileSize)
	c.MemoryHandler = memoryHandler.NewMemoryHandler(c.MemoryService, forms.MemoryRedirectURL, formMaxFileSize)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)
	c.UploadSessionHandler = sessionHandler.NewUploadSessionHandler(c.UploadSessionService)
	c.CMSHandler = cmsHandler.NewCMSHandler(c.CMSService)
	c.WidgetHandler = widgetHandler.NewWidgetHandler()
}

// ========================================
// HEALTH
// ========================================

// HealthStatus trả về trạng thái từng dependency ("ok", "disabled", "memory", "error: ...")
func (c *Container) HealthStatus(ctx context.Context) map[string]string {
	status := map[string]string{
		"webflow": "ok",
		"cache":   "memory",
		"r2":      "disabled",
	}

	if !c.Webflow.HasToken() {
		status["webflow"] = "missing token"
	}

	if c.Redis != nil {
		status["cache"] = "redis"
		if err := c.Cache.Ping(ctx); err != nil {
			status["cache"] = fmt.Sprintf("error: %v", err)
		}
	}

	if c.R2 != nil {
		status["r2"] = "ok"
		if err := c.R2.HealthCheck(ctx); err != nil {
			status["r2"] = fmt.Sprintf("error: %v", err)
		}
	}

	return status
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
