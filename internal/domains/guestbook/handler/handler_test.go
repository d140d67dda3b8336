package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/domains/guestbook/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*model.SubmitResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Count(ctx context.Context) (*model.CountResult, error) {
	args := m.Called(ctx)
	if res, ok := args.Get(0).(*model.CountResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Status() model.StatusResponse {
	return m.Called().Get(0).(model.StatusResponse)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGuestbookHandler(svc, "https://site.example/guestbook")
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }

	r := gin.New()
	r.GET("/api/guestbook/submit", h.Status)
	r.POST("/api/guestbook/submit", h.Submit)
	r.GET("/api/guestbook/count", h.Count)
	r.GET("/api/guestbook/count-html", h.CountHTML)
	return r
}

func postForm(r http.Handler, values url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/guestbook/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_RedirectsOnSuccess(t *testing.T) {
	svc := new(mockService)
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(req model.SubmitRequest) bool {
		return req.FullName == "Jane" && req.CardColor == "Ocean Teal"
	})).Return(&model.SubmitResult{ItemID: "i1", GuestbookID: 12}, nil)

	w := postForm(setupRouter(svc), url.Values{"full_name": {"Jane"}, "Card-Color": {"Ocean Teal"}}, "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://site.example/guestbook?success=true&id=12&t=1700000000000", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestSubmit_RedirectsOnError(t *testing.T) {
	svc := new(mockService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, model.NewEditCodeMismatchError())

	w := postForm(setupRouter(svc), url.Values{"itemId": {"i1"}}, "")

	assert.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "true", loc.Query().Get("error"))
	assert.Contains(t, loc.Query().Get("message"), "Edit code is incorrect")
	assert.Equal(t, "1700000000000", loc.Query().Get("t"))
}

func TestSubmit_JSONWhenRequested(t *testing.T) {
	svc := new(mockService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(&model.SubmitResult{ItemID: "i1", GuestbookID: 3, EditCode: "ABC123"}, nil)

	w := postForm(setupRouter(svc), url.Values{"full_name": {"Jane"}}, "application/json")

	assert.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Success bool               `json:"success"`
		Data    model.SubmitResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ABC123", body.Data.EditCode)
}

func TestSubmit_JSONValidationError(t *testing.T) {
	svc := new(mockService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, model.NewValidationError(errors.New("email: email is required.")))

	w := postForm(setupRouter(svc), url.Values{}, "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrCodeValidation)
}

func TestSubmit_MissingTokenIsJSON(t *testing.T) {
	svc := new(mockService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, model.NewMissingTokenError())

	w := postForm(setupRouter(svc), url.Values{"full_name": {"Jane"}}, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Missing API token")
}

func TestCount(t *testing.T) {
	svc := new(mockService)
	svc.On("Count", mock.Anything).Return(&model.CountResult{Count: 17, Timestamp: time.Unix(0, 0).UTC()}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guestbook/count", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"success":true,"count":17,"timestamp":"1970-01-01T00:00:00Z"}`, w.Body.String())
}

func TestCount_Error(t *testing.T) {
	svc := new(mockService)
	svc.On("Count", mock.Anything).Return(nil, model.NewCountFailedError(errors.New("down")))

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guestbook/count", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCountHTML(t *testing.T) {
	svc := new(mockService)
	svc.On("Count", mock.Anything).Return(&model.CountResult{Count: 5}, nil).Once()
	svc.On("Count", mock.Anything).Return(nil, errors.New("down")).Once()
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guestbook/count-html", nil))
	assert.Equal(t, "5", w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guestbook/count-html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Body.String())
}

func TestStatus(t *testing.T) {
	svc := new(mockService)
	svc.On("Status").Return(model.StatusResponse{Message: "ok", HasToken: true})

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/guestbook/submit", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasToken":true`)
}
