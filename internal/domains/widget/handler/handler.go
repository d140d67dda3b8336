package handler

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"sort"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/shared/response"
)

//go:embed assets/*.js
var assets embed.FS

const (
	contentTypeJS = "application/javascript; charset=utf-8"
	cacheControl  = "public, max-age=300"
)

// =====================================================
// WIDGET HANDLER
// =====================================================

// WidgetHandler phục vụ các script nhúng vào trang Webflow
type WidgetHandler struct {
	files fs.FS
}

func NewWidgetHandler() *WidgetHandler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		// assets được embed lúc compile
		panic(err)
	}
	return &WidgetHandler{files: sub}
}

// Scripts trả về tên các script có thể nhúng
func (h *WidgetHandler) Scripts() []string {
	names, _ := fs.Glob(h.files, "*.js")
	sort.Strings(names)
	return names
}

// Index GET /embed: danh sách script kèm URL nhúng
func (h *WidgetHandler) Index(c *gin.Context) {
	base := response.RequestPath(c)
	scripts := make([]gin.H, 0)
	for _, name := range h.Scripts() {
		scripts = append(scripts, gin.H{"name": name, "path": base + "/" + name})
	}
	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, gin.H{"scripts": scripts})
}

// Serve GET /embed/:script
func (h *WidgetHandler) Serve(c *gin.Context) {
	name := path.Base(c.Param("script"))

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		response.NotFound(c, "Script not found")
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, contentTypeJS, data)
}
