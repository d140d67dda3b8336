package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/uploadsession/model"
	"webflow-forms-backend/internal/domains/uploadsession/service"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/response"
)

// =====================================================
// UPLOAD SESSION HANDLER
// =====================================================

type UploadSessionHandler struct {
	sessionService service.ServiceInterface
}

func NewUploadSessionHandler(sessionService service.ServiceInterface) *UploadSessionHandler {
	return &UploadSessionHandler{sessionService: sessionService}
}

// Get GET /api/uploads/sessions/:sessionId
func (h *UploadSessionHandler) Get(c *gin.Context) {
	response.NoStore(c)

	session, err := h.sessionService.Load(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Save PUT /api/uploads/sessions/:sessionId
func (h *UploadSessionHandler) Save(c *gin.Context) {
	// Step 1: Bind request body
	var req model.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Call service
	session, err := h.sessionService.Save(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Delete DELETE /api/uploads/sessions/:sessionId?purge=true
func (h *UploadSessionHandler) Delete(c *gin.Context) {
	purge := form.ParseBool(c.Query("purge"))

	if err := h.sessionService.Delete(c.Request.Context(), c.Param("sessionId"), purge); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	var sErr *model.SessionError
	if !errors.As(err, &sErr) {
		response.InternalServerError(c, err.Error())
		return
	}

	switch sErr.Code {
	case model.ErrCodeSessionNotFound:
		response.ErrorResponse(c, http.StatusNotFound, sErr.Code, sErr.Message)
	case model.ErrCodeInvalidSessionID:
		response.ErrorResponse(c, http.StatusBadRequest, sErr.Code, sErr.Message)
	case model.ErrCodeInvalidImages:
		response.ErrorWithDetails(c, http.StatusBadRequest, sErr.Code, sErr.Message, sErr.Err)
	default:
		response.ErrorResponse(c, http.StatusServiceUnavailable, sErr.Code, sErr.Message)
	}
}
