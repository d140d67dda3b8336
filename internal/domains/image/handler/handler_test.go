package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/domains/image/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Upload(ctx context.Context, req model.UploadRequest) (*model.UploadResult, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*model.UploadResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) PresignUpload(ctx context.Context, req model.PresignRequest) (*model.PresignResult, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*model.PresignResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewImageHandler(svc)

	r := gin.New()
	r.POST("/api/images/upload", h.Upload)
	r.POST("/api/images/upload-url", h.UploadURL)
	return r
}

func uploadRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withFile {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="cat.jpg"`)
		hdr.Set("Content-Type", "image/jpeg")
		fw, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	svc := new(mockService)
	svc.On("Upload", mock.Anything, mock.MatchedBy(func(req model.UploadRequest) bool {
		return req.File != nil &&
			req.File.FileName == "cat.jpg" &&
			req.File.ContentType == "image/jpeg" &&
			req.SessionID == "s1" &&
			req.UploadID == "photo1"
	})).Return(&model.UploadResult{Success: true, FileKey: "images/k.jpg", PublicURL: "https://pub/images/k.jpg"}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, uploadRequest(t, map[string]string{"session_id": "s1", "upload_id": "photo1"}, true))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fileKey":"images/k.jpg"`)
	assert.Contains(t, w.Body.String(), `"publicUrl":"https://pub/images/k.jpg"`)
	svc.AssertExpectations(t)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"no file", model.NewNoFileError(), http.StatusBadRequest, "No file provided"},
		{"too large", model.NewTooLargeError(2*1024*1024, 1536*1024), http.StatusRequestEntityTooLarge, "File too large (2.00MB)"},
		{"not configured", model.NewNotConfiguredError(), http.StatusServiceUnavailable, "R2 storage not configured"},
		{"upload failed", model.NewUploadFailedError(errors.New("denied")), http.StatusInternalServerError, "Failed to upload image: denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Upload", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			setupRouter(svc).ServeHTTP(w, uploadRequest(t, nil, false))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}
}

func TestUploadURL(t *testing.T) {
	svc := new(mockService)
	svc.On("PresignUpload", mock.Anything, model.PresignRequest{FileName: "a.png", FileType: "image/png"}).
		Return(&model.PresignResult{Success: true, UploadURL: "https://signed", FileKey: "images/a.png", ExpiresIn: 3600}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload-url", strings.NewReader(`{"fileName":"a.png","fileType":"image/png"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uploadUrl":"https://signed"`)
	assert.Contains(t, w.Body.String(), `"expiresIn":3600`)
}

func TestUploadURL_Validation(t *testing.T) {
	svc := new(mockService)
	svc.On("PresignUpload", mock.Anything, mock.Anything).Return(nil, model.NewValidationError(errors.New("fileType: cannot be blank")))

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload-url", strings.NewReader(`{"fileName":"a.png"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Missing fileName or fileType"}`, w.Body.String())
}
