package service

import (
	"context"

	"webflow-forms-backend/internal/domains/cms/model"
	"webflow-forms-backend/internal/infrastructure/webflow"
)

// ServiceInterface là passthrough có kiểm tra input tới Webflow CMS
type ServiceInterface interface {
	ListLive(ctx context.Context, collectionID string, limit, offset int) (*webflow.ItemList, error)
	Create(ctx context.Context, collectionID string, req model.ItemRequest) (*webflow.Item, error)
	GetLive(ctx context.Context, collectionID, itemID string) (*webflow.Item, error)
	Update(ctx context.Context, collectionID, itemID string, req model.ItemRequest) (*webflow.Item, error)
}
