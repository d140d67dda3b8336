package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/shared/middleware"
	"webflow-forms-backend/internal/shared/response"
	"webflow-forms-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Multipart > MaxMultipartMemory được spill ra file tạm (form.FromContext dùng c.MultipartForm)
	router.MaxMultipartMemory = 8 << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	// Toàn bộ routes nằm dưới mount path (COSMIC_MOUNT_PATH), rỗng = "/"
	root := router.Group(c.Config.App.BasePath)
	{
		setupWidgetRoutes(root, c)

		api := root.Group("/api")
		api.GET("/health", healthCheckHandler(c))

		setupGuestbookRoutes(api, c)
		setupTimelineRoutes(api, c)
		setupMemoryRoutes(api, c)
		setupImageRoutes(api, c)
		setupUploadSessionRoutes(api, c)
		setupCMSRoutes(api, c)
	}

	return router
}

// ========================================
// GUESTBOOK ROUTES
// ========================================
func setupGuestbookRoutes(api *gin.RouterGroup, c *container.Container) {
	guestbook := api.Group("/guestbook")
	{
		guestbook.GET("/submit", c.GuestbookHandler.Status)
		guestbook.POST("/submit", c.GuestbookHandler.Submit)
		guestbook.GET("/count", c.GuestbookHandler.Count)
		guestbook.GET("/count-html", c.GuestbookHandler.CountHTML)
	}
}

// ========================================
// TIMELINE ROUTES
// ========================================
func setupTimelineRoutes(api *gin.RouterGroup, c *container.Container) {
	timeline := api.Group("/timeline")
	{
		timeline.GET("/submit", c.TimelineHandler.Status)
		timeline.POST("/submit", c.TimelineHandler.Submit)
		timeline.POST("/attach-images", c.TimelineHandler.AttachImages)
	}
}

// ========================================
// MEMORY JOURNAL ROUTES
// ========================================
func setupMemoryRoutes(api *gin.RouterGroup, c *container.Container) {
	memory := api.Group("/memory")
	{
		memory.GET("/submit", c.MemoryHandler.Status)
		memory.POST("/submit", c.MemoryHandler.Submit)
	}
}

// ========================================
// IMAGE ROUTES (R2)
// ========================================
func setupImageRoutes(api *gin.RouterGroup, c *container.Container) {
	images := api.Group("/images")
	{
		images.POST("/upload", c.ImageHandler.Upload)
		images.POST("/upload-url", c.ImageHandler.UploadURL)
	}
}

// ========================================
// UPLOAD SESSION ROUTES
// ========================================
func setupUploadSessionRoutes(api *gin.RouterGroup, c *container.Container) {
	sessions := api.Group("/uploads/sessions")
	{
		sessions.GET("/:sessionId", c.UploadSessionHandler.Get)
		sessions.PUT("/:sessionId", c.UploadSessionHandler.Save)
		sessions.DELETE("/:sessionId", c.UploadSessionHandler.Delete)
	}
}

// ========================================
// CMS PASSTHROUGH ROUTES
// ========================================
func setupCMSRoutes(api *gin.RouterGroup, c *container.Container) {
	cms := api.Group("/cms/:collectionId")
	{
		cms.GET("", c.CMSHandler.List)
		cms.POST("/create", c.CMSHandler.Create)
		cms.GET("/:itemId", c.CMSHandler.Get)
		cms.PATCH("/:itemId", c.CMSHandler.Update)
	}
}

// ========================================
// EMBED WIDGETS
// ========================================
func setupWidgetRoutes(root *gin.RouterGroup, c *container.Container) {
	root.GET("/embed", c.WidgetHandler.Index)
	root.GET("/embed/:script", c.WidgetHandler.Serve)
}

// healthCheckHandler: luôn 200 (liveness), services chỉ để quan sát
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		services := c.HealthStatus(checkCtx)

		status := "ok"
		for _, s := range services {
			if strings.HasPrefix(s, "error") {
				status = "degraded"
			}
		}

		response.NoStore(ctx)
		ctx.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   c.Config.App.Version,
			"services":  services,
		})
	}
}
