package model

import (
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"webflow-forms-backend/internal/shared/form"
)

// UploadRequest là một file gửi lên POST /api/images/upload.
// SessionID + UploadID (tùy chọn) → ghi ảnh vào upload session.
type UploadRequest struct {
	File      *form.File
	Alt       string
	SessionID string
	UploadID  string
}

func (r UploadRequest) RecordsSession() bool {
	return r.SessionID != "" && r.UploadID != ""
}

// UploadResult giữ nguyên shape mà widget đang đọc
type UploadResult struct {
	Success    bool   `json:"success"`
	FileKey    string `json:"fileKey"`
	PublicURL  string `json:"publicUrl"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileType   string `json:"fileType"`
	Compressed bool   `json:"compressed"`
	SessionID  string `json:"sessionId,omitempty"`
}

// PresignRequest body của POST /api/images/upload-url
type PresignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r PresignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required),
		validation.Field(&r.FileType, validation.Required),
	)
}

type PresignResult struct {
	Success   bool   `json:"success"`
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int    `json:"expiresIn"`
}

var extensionPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Extension lấy đuôi file (lowercase); không có hoặc không hợp lệ → "jpg"
func Extension(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" || len(ext) > maxExtensionLen || !extensionPattern.MatchString(ext) {
		return DefaultExtension
	}
	return ext
}

// ObjectKey: images/<id>.<ext>
func ObjectKey(id, ext string) string {
	return KeyPrefix + id + "." + ext
}

// IsAllowedType so sánh MIME type (không phân biệt hoa thường, bỏ params)
func IsAllowedType(contentType string, allowed []string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, ct) {
			return true
		}
	}
	return false
}
