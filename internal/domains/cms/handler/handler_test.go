package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/domains/cms/service"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/infrastructure/webflow/webflowtest"
)

func setupRouter(cms *webflowtest.FakeCMS, hasToken bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCMSHandler(service.NewCMSService(cms, hasToken))

	r := gin.New()
	r.GET("/api/cms/:collectionId", h.List)
	r.POST("/api/cms/:collectionId/create", h.Create)
	r.GET("/api/cms/:collectionId/:itemId", h.Get)
	r.PATCH("/api/cms/:collectionId/:itemId", h.Update)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	for i := 0; i < 25; i++ {
		cms.Seed("col", true, webflow.FieldData{"name": "x"})
	}

	w := do(setupRouter(cms, true), http.MethodGet, "/api/cms/col", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list webflow.ItemList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 20)
	assert.Equal(t, 25, list.Pagination.Total)

	w = do(setupRouter(cms, true), http.MethodGet, "/api/cms/col?limit=500&offset=20", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 5)
	assert.Equal(t, 100, list.Pagination.Limit)
}

func TestList_UpstreamErrors(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	cms.ListErr = &webflow.APIError{StatusCode: http.StatusUnauthorized, Message: "Not authorized"}

	w := do(setupRouter(cms, true), http.MethodGet, "/api/cms/col", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not authorized"}`, w.Body.String())

	cms.ListErr = errors.New("dial tcp: timeout")
	w = do(setupRouter(cms, true), http.MethodGet, "/api/cms/col", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"dial tcp: timeout"}`, w.Body.String())
}

func TestCreate(t *testing.T) {
	cms := webflowtest.NewFakeCMS()

	w := do(setupRouter(cms, true), http.MethodPost, "/api/cms/col/create", `{"fieldData":{"name":"Hi","slug":"hi"},"isDraft":false}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"name":"Hi"`)
}

func TestCreate_ValidationErrors(t *testing.T) {
	w := do(setupRouter(webflowtest.NewFakeCMS(), true), http.MethodPost, "/api/cms/col/create", `{"fieldData":{"name":"Hi"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Name and slug are required fields",
		"validationErrors": [{"field":"slug","message":"Slug is required"}]
	}`, w.Body.String())

	w = do(setupRouter(webflowtest.NewFakeCMS(), true), http.MethodPost, "/api/cms/col/create", `{}`)
	assert.JSONEq(t, `{"success":false,"error":"Field data is required"}`, w.Body.String())
}

func TestGet(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	live := cms.Seed("col", true, webflow.FieldData{"name": "live"})
	draft := cms.Seed("col", false, webflow.FieldData{"name": "draft"})
	r := setupRouter(cms, true)

	w := do(r, http.MethodGet, "/api/cms/col/"+live.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"live"`)

	w = do(r, http.MethodGet, "/api/cms/col/"+draft.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	item := cms.Seed("col", true, webflow.FieldData{"name": "old"})

	w := do(setupRouter(cms, true), http.MethodPatch, "/api/cms/col/"+item.ID, `{"fieldData":{"name":"new"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", cms.Items("col")[0].FieldData["name"])
}

func TestMissingToken(t *testing.T) {
	w := do(setupRouter(webflowtest.NewFakeCMS(), false), http.MethodGet, "/api/cms/col", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Server configuration error: Missing API token"}`, w.Body.String())
}
