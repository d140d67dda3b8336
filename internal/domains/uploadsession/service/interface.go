package service

import (
	"context"

	"webflow-forms-backend/internal/domains/uploadsession/model"
)

type ServiceInterface interface {
	// Load trả về session, lỗi NotFound nếu hết hạn hoặc chưa tạo
	Load(ctx context.Context, id string) (*model.Session, error)

	// Save thay toàn bộ ảnh của session và gia hạn TTL
	Save(ctx context.Context, id string, req model.SaveRequest) (*model.Session, error)

	// AddImage ghi một ảnh vào session (tạo session nếu chưa có)
	AddImage(ctx context.Context, id, uploadID string, img model.UploadedImage) (*model.Session, error)

	// Delete xóa session; purge=true xóa luôn object trên storage
	Delete(ctx context.Context, id string, purge bool) error
}

// ObjectRemover xóa object khỏi storage (R2)
type ObjectRemover interface {
	RemoveObjects(ctx context.Context, keys []string) error
}
