package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/timeline/model"
	"webflow-forms-backend/internal/domains/timeline/service"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/response"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// TIMELINE HANDLER
// =====================================================

type TimelineHandler struct {
	timelineService service.ServiceInterface
	redirectURL     string
	maxFileSize     int64
}

// NewTimelineHandler: redirectURL rỗng → redirect về chính path của request
func NewTimelineHandler(timelineService service.ServiceInterface, redirectURL string, maxFileSize int64) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		redirectURL:     redirectURL,
		maxFileSize:     maxFileSize,
	}
}

// Status debug endpoint
// GET /api/timeline/submit
func (h *TimelineHandler) Status(c *gin.Context) {
	response.NoStore(c)
	c.JSON(http.StatusOK, h.timelineService.Status())
}

// Submit nhận multipart form từ Webflow
// POST /api/timeline/submit
func (h *TimelineHandler) Submit(c *gin.Context) {
	logger.Info("📥 Timeline form submission received", nil)

	// Step 1: Parse form
	values, err := form.FromContext(c)
	if err != nil {
		h.fail(c, model.NewValidationError(err))
		return
	}
	logger.Debug("Timeline form keys: " + strings.Join(values.Keys(), ", "))

	// Step 2: Map form fields + files
	req, err := model.RequestFromForm(values, h.maxFileSize)
	if err != nil {
		h.fail(c, model.NewValidationError(err))
		return
	}

	// Step 3: Call service
	result, err := h.timelineService.Submit(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Step 4: Redirect
	if response.WantsJSON(c) {
		response.Success(c, http.StatusCreated, result)
		return
	}
	response.RedirectSuccess(c, http.StatusSeeOther, h.target(c), "eventNumber", strconv.Itoa(result.EventNumber))
}

func (h *TimelineHandler) fail(c *gin.Context, err error) {
	logger.Error("❌ Timeline form submission error", err)

	if response.WantsJSON(c) {
		statusCode, errCode := mapTimelineError(err)
		response.ErrorResponse(c, statusCode, errCode, model.UserMessage(err))
		return
	}
	response.RedirectError(c, http.StatusSeeOther, h.target(c), model.UserMessage(err))
}

func (h *TimelineHandler) target(c *gin.Context) string {
	if h.redirectURL != "" {
		return h.redirectURL
	}
	return response.RequestPath(c)
}

// AttachImages gắn ảnh đã upload vào event có sẵn
// POST /api/timeline/attach-images
func (h *TimelineHandler) AttachImages(c *gin.Context) {
	var req model.AttachImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, err := h.timelineService.AttachImages(c.Request.Context(), req)
	if err != nil {
		logger.Error("Error attaching images", err)

		statusCode, _ := mapTimelineError(err)
		message := model.UserMessage(err)
		var tlErr *model.TimelineError
		if errors.As(err, &tlErr) && tlErr.Code == model.ErrCodeValidation {
			message = "Missing itemId"
		}
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"itemId":         result.ItemID,
		"imagesAttached": result.ImagesAttached,
	})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func mapTimelineError(err error) (int, string) {
	var tlErr *model.TimelineError
	if !errors.As(err, &tlErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	switch tlErr.Code {
	case model.ErrCodeValidation:
		return http.StatusBadRequest, tlErr.Code
	case model.ErrCodeEventNotFound:
		return http.StatusNotFound, tlErr.Code
	case model.ErrCodeCreateFailed, model.ErrCodeUpdateFailed:
		if status := webflow.StatusCode(err); status >= 400 && status < 500 {
			return http.StatusBadGateway, tlErr.Code
		}
		return http.StatusInternalServerError, tlErr.Code
	default:
		return http.StatusInternalServerError, tlErr.Code
	}
}
