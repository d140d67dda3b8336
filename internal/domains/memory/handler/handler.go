package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/memory/model"
	"webflow-forms-backend/internal/domains/memory/service"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/response"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// MEMORY JOURNAL HANDLER
// =====================================================

type MemoryHandler struct {
	memoryService service.ServiceInterface
	redirectURL   string
	maxFileSize   int64
}

func NewMemoryHandler(memoryService service.ServiceInterface, redirectURL string, maxFileSize int64) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
		redirectURL:   redirectURL,
		maxFileSize:   maxFileSize,
	}
}

// Status debug endpoint
// GET /api/memory/submit
func (h *MemoryHandler) Status(c *gin.Context) {
	response.NoStore(c)
	c.JSON(http.StatusOK, h.memoryService.Status())
}

// Submit nhận multipart form memory journal
// POST /api/memory/submit
func (h *MemoryHandler) Submit(c *gin.Context) {
	logger.Info("📥 Memory Journal form submission received", nil)

	// Step 1: Parse form
	values, err := form.FromContext(c)
	if err != nil {
		h.fail(c, model.NewValidationError(err))
		return
	}
	logger.Debug("Memory form keys: " + strings.Join(values.Keys(), ", "))

	// Step 2: Map form fields + files
	req, err := model.RequestFromForm(values, h.maxFileSize)
	if err != nil {
		h.fail(c, model.NewValidationError(err))
		return
	}

	// Step 3: Call service
	result, err := h.memoryService.Submit(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Step 4: Redirect
	if response.WantsJSON(c) {
		response.Success(c, http.StatusCreated, result)
		return
	}
	response.RedirectSuccess(c, http.StatusSeeOther, h.target(c), "memoryId", strconv.Itoa(result.MemoryID))
}

func (h *MemoryHandler) fail(c *gin.Context, err error) {
	logger.Error("❌ Memory Journal form submission error", err)

	if response.WantsJSON(c) {
		statusCode, errCode := mapMemoryError(err)
		response.ErrorResponse(c, statusCode, errCode, model.UserMessage(err))
		return
	}
	response.RedirectError(c, http.StatusSeeOther, h.target(c), model.UserMessage(err))
}

func (h *MemoryHandler) target(c *gin.Context) string {
	if h.redirectURL != "" {
		return h.redirectURL
	}
	return response.RequestPath(c)
}

func mapMemoryError(err error) (int, string) {
	var mErr *model.MemoryError
	if !errors.As(err, &mErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	switch mErr.Code {
	case model.ErrCodeValidation:
		return http.StatusBadRequest, mErr.Code
	case model.ErrCodeCreateFailed:
		if status := webflow.StatusCode(err); status >= 400 && status < 500 {
			return http.StatusBadGateway, mErr.Code
		}
		return http.StatusInternalServerError, mErr.Code
	default:
		return http.StatusInternalServerError, mErr.Code
	}
}
