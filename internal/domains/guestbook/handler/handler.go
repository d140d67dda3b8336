package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/guestbook/model"
	"webflow-forms-backend/internal/domains/guestbook/service"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/response"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// GUESTBOOK HANDLER
// =====================================================

type GuestbookHandler struct {
	guestbookService service.ServiceInterface
	redirectURL      string
	now              func() time.Time
}

func NewGuestbookHandler(guestbookService service.ServiceInterface, redirectURL string) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookService: guestbookService,
		redirectURL:      redirectURL,
		now:              time.Now,
	}
}

// Status debug endpoint
// GET /api/guestbook/submit
func (h *GuestbookHandler) Status(c *gin.Context) {
	response.NoStore(c)
	c.JSON(http.StatusOK, h.guestbookService.Status())
}

// Submit nhận POST từ form Webflow
// POST /api/guestbook/submit
func (h *GuestbookHandler) Submit(c *gin.Context) {
	logger.Info("📥 Guestbook form submission received", nil)

	// Step 1: Parse form
	values, err := form.FromContext(c)
	if err != nil {
		h.fail(c, model.NewValidationError(err))
		return
	}
	logger.Debug("Guestbook form keys: " + strings.Join(values.Keys(), ", "))

	// Step 2: Map form fields
	req := model.RequestFromForm(values)

	// Step 3: Call service
	result, err := h.guestbookService.Submit(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Step 4: Respond
	if response.WantsJSON(c) {
		status := http.StatusCreated
		if result.Edited {
			status = http.StatusOK
		}
		response.Success(c, status, result)
		return
	}

	pairs := []string{"id", strconv.Itoa(result.GuestbookID)}
	if result.Edited {
		pairs = append(pairs, "edited", "true")
	}
	pairs = append(pairs, "t", response.CacheBuster(h.now()))
	response.RedirectSuccess(c, http.StatusFound, h.redirectURL, pairs...)
}

// fail trả JSON khi client muốn JSON (hoặc thiếu token), ngược lại redirect về trang guestbook
func (h *GuestbookHandler) fail(c *gin.Context, err error) {
	logger.Error("❌ Guestbook form submission error", err)

	statusCode, errCode := mapGuestbookError(err)
	if response.WantsJSON(c) || errors.Is(err, model.ErrMissingToken) {
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}
	response.RedirectError(c, http.StatusFound, h.redirectURL, err.Error(), "t", response.CacheBuster(h.now()))
}

// Count trả về số entry đang live
// GET /api/guestbook/count
func (h *GuestbookHandler) Count(c *gin.Context) {
	response.NoStore(c)

	result, err := h.guestbookService.Count(c.Request.Context())
	if err != nil {
		logger.Error("Error fetching guestbook count", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"count":   0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     result.Count,
		"timestamp": result.Timestamp.Format(time.RFC3339Nano),
	})
}

// CountHTML trả về count dạng text, "0" khi lỗi
// GET /api/guestbook/count-html
func (h *GuestbookHandler) CountHTML(c *gin.Context) {
	response.NoStore(c)

	count := 0
	if result, err := h.guestbookService.Count(c.Request.Context()); err != nil {
		logger.Error("Error fetching guestbook count", err)
	} else {
		count = result.Count
	}

	c.String(http.StatusOK, strconv.Itoa(count))
}

// =====================================================
// ERROR MAPPING
// =====================================================

func mapGuestbookError(err error) (int, string) {
	var gbErr *model.GuestbookError
	if !errors.As(err, &gbErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	switch gbErr.Code {
	case model.ErrCodeValidation:
		return http.StatusBadRequest, gbErr.Code
	case model.ErrCodeEntryNotFound:
		return http.StatusNotFound, gbErr.Code
	case model.ErrCodeEditCodeMismatch:
		return http.StatusForbidden, gbErr.Code
	case model.ErrCodeCreateFailed, model.ErrCodeUpdateFailed:
		if status := webflow.StatusCode(err); status >= 400 && status < 500 {
			return http.StatusBadGateway, gbErr.Code
		}
		return http.StatusInternalServerError, gbErr.Code
	default:
		return http.StatusInternalServerError, gbErr.Code
	}
}
