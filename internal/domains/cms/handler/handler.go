package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webflow-forms-backend/internal/domains/cms/model"
	"webflow-forms-backend/internal/domains/cms/service"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// CMS PASSTHROUGH HANDLER
// =====================================================

type CMSHandler struct {
	cmsService service.ServiceInterface
}

func NewCMSHandler(cmsService service.ServiceInterface) *CMSHandler {
	return &CMSHandler{cmsService: cmsService}
}

// List GET /api/cms/:collectionId?limit=20&offset=0
func (h *CMSHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(model.DefaultListLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.cmsService.ListLive(c.Request.Context(), c.Param("collectionId"), limit, offset)
	if err != nil {
		logger.Error("Error listing CMS items", err)
		respondError(c, err, http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create POST /api/cms/:collectionId/create
func (h *CMSHandler) Create(c *gin.Context) {
	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
		return
	}

	item, err := h.cmsService.Create(c.Request.Context(), c.Param("collectionId"), req)
	if err != nil {
		logger.Error("Error creating CMS item", err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// Get GET /api/cms/:collectionId/:itemId
func (h *CMSHandler) Get(c *gin.Context) {
	item, err := h.cmsService.GetLive(c.Request.Context(), c.Param("collectionId"), c.Param("itemId"))
	if err != nil {
		logger.Error("Error fetching CMS item", err)
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// Update PATCH /api/cms/:collectionId/:itemId
func (h *CMSHandler) Update(c *gin.Context) {
	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
		return
	}

	item, err := h.cmsService.Update(c.Request.Context(), c.Param("collectionId"), c.Param("itemId"), req)
	if err != nil {
		logger.Error("Error updating CMS item", err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// respondError: lỗi Webflow giữ nguyên status + message; lỗi mạng dùng fallback của từng route
func respondError(c *gin.Context, err error, fallback int) {
	var cmsErr *model.CMSError
	if errors.As(err, &cmsErr) {
		switch cmsErr.Code {
		case model.ErrCodeMissingToken:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": cmsErr.Message})
			return
		case model.ErrCodeValidation:
			body := gin.H{"success": false, "error": cmsErr.Message}
			if len(cmsErr.ValidationErrors) > 0 {
				body["validationErrors"] = cmsErr.ValidationErrors
			}
			c.JSON(http.StatusBadRequest, body)
			return
		}
	}

	var apiErr *webflow.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
		c.JSON(apiErr.StatusCode, gin.H{"success": false, "error": apiErr.Message})
		return
	}

	message := err.Error()
	if cmsErr != nil && cmsErr.Err != nil {
		message = cmsErr.Err.Error()
	}
	c.JSON(fallback, gin.H{"success": false, "error": message})
}
