package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/image/model"
	"webflow-forms-backend/internal/domains/image/service"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// IMAGE HANDLER
// =====================================================

type ImageHandler struct {
	imageService service.ServiceInterface
}

func NewImageHandler(imageService service.ServiceInterface) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload nhận một file ảnh và ghi lên R2
// POST /api/images/upload
func (h *ImageHandler) Upload(c *gin.Context) {
	// Step 1: Parse multipart form
	values, err := form.FromContext(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	// Size được service kiểm tra để trả message rõ ràng
	file, err := values.File(model.FieldFile, 0)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	// Step 2: Call service
	result, err := h.imageService.Upload(c.Request.Context(), model.UploadRequest{
		File:      file,
		Alt:       values.Get(model.FieldAlt),
		SessionID: values.Get(model.FieldSessionID),
		UploadID:  values.Get(model.FieldUploadID),
	})
	if err != nil {
		logger.Error("❌ Image upload error", err)
		status, message := mapImageError(err)
		fail(c, status, message)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UploadURL trả về presigned PUT URL
// POST /api/images/upload-url
func (h *ImageHandler) UploadURL(c *gin.Context) {
	var req model.PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.imageService.PresignUpload(c.Request.Context(), req)
	if err != nil {
		logger.Error("Error generating upload URL", err)
		status, message := mapImageError(err)
		fail(c, status, message)
		return
	}

	c.JSON(http.StatusOK, result)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

func mapImageError(err error) (int, string) {
	var iErr *model.ImageError
	if !errors.As(err, &iErr) {
		return http.StatusInternalServerError, err.Error()
	}

	switch iErr.Code {
	case model.ErrCodeNoFile, model.ErrCodeInvalidType, model.ErrCodeValidation:
		return http.StatusBadRequest, iErr.Message
	case model.ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge, iErr.Message
	case model.ErrCodeNotConfigured:
		return http.StatusServiceUnavailable, iErr.Message
	default:
		return http.StatusInternalServerError, iErr.Error()
	}
}
