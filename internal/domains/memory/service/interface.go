package service

import (
	"context"

	"webflow-forms-backend/internal/domains/memory/model"
	"webflow-forms-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	// Submit: validate → upload ảnh + detect orientation → cấp memory-id → tạo item → publish
	Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error)

	Status() model.StatusResponse
}

// Config của memory service
type Config struct {
	CollectionID  string
	SiteID        string
	HasWriteToken bool
	HasReadToken  bool
	CardOptions   storage.CardSizeOptions
}
