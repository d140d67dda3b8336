package service

import (
	"context"

	"webflow-forms-backend/internal/domains/timeline/model"
	sessionmodel "webflow-forms-backend/internal/domains/uploadsession/model"
)

type ServiceInterface interface {
	// Submit: validate → upload ảnh → cấp event-number → tạo item → publish
	Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error)

	// AttachImages gắn ảnh (đã upload) vào event có sẵn
	AttachImages(ctx context.Context, req model.AttachImagesRequest) (*model.AttachImagesResult, error)

	Status() model.StatusResponse
}

// SessionLoader đọc upload session do widget ghi (uploadsession service).
// Session bị xóa sau khi tạo item để lần submit sau không dùng lại ảnh cũ.
type SessionLoader interface {
	Load(ctx context.Context, id string) (*sessionmodel.Session, error)
	Delete(ctx context.Context, id string, purge bool) error
}

// Config của timeline service
type Config struct {
	CollectionID  string
	SiteID        string
	HasWriteToken bool
	HasReadToken  bool
}
