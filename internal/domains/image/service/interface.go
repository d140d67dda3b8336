package service

import (
	"context"
	"time"

	"webflow-forms-backend/internal/domains/image/model"
	sessionmodel "webflow-forms-backend/internal/domains/uploadsession/model"
)

type ServiceInterface interface {
	// Upload: validate → nén nếu cần → put lên R2 → (tùy chọn) ghi vào upload session
	Upload(ctx context.Context, req model.UploadRequest) (*model.UploadResult, error)

	// PresignUpload tạo presigned PUT URL để browser upload thẳng lên R2
	PresignUpload(ctx context.Context, req model.PresignRequest) (*model.PresignResult, error)
}

// ObjectStore là phần của storage.R2Storage mà service dùng
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	PublicURL(key string) string
}

// SessionRecorder ghi ảnh vừa upload vào upload session (uploadsession service)
type SessionRecorder interface {
	AddImage(ctx context.Context, id, uploadID string, img sessionmodel.UploadedImage) (*sessionmodel.Session, error)
}

type Config struct {
	AllowedTypes  []string
	MaxFileSize   int64
	PresignExpiry time.Duration
}
