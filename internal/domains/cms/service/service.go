package service

import (
	"context"

	"webflow-forms-backend/internal/domains/cms/model"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/pkg/logger"
)

type cmsService struct {
	cms      webflow.CMS
	hasToken bool
}

func NewCMSService(cms webflow.CMS, hasToken bool) ServiceInterface {
	return &cmsService{cms: cms, hasToken: hasToken}
}

func (s *cmsService) ListLive(ctx context.Context, collectionID string, limit, offset int) (*webflow.ItemList, error) {
	if !s.hasToken {
		return nil, model.NewMissingTokenError()
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.cms.ListItemsLive(ctx, collectionID, webflow.ListOptions{
		Limit:  model.ClampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, model.NewUpstreamError(err)
	}
	return list, nil
}

func (s *cmsService) Create(ctx context.Context, collectionID string, req model.ItemRequest) (*webflow.Item, error) {
	if !s.hasToken {
		return nil, model.NewMissingTokenError()
	}
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}
	if req.LocaleID != "" {
		logger.Debug("localeId is ignored on create; item goes to the primary locale")
	}

	item, err := s.cms.CreateItem(ctx, collectionID, req.Payload())
	if err != nil {
		return nil, model.NewUpstreamError(err)
	}

	logger.Info("CMS item created", map[string]interface{}{
		"collection_id": collectionID,
		"item_id":       item.ID,
	})
	return item, nil
}

func (s *cmsService) GetLive(ctx context.Context, collectionID, itemID string) (*webflow.Item, error) {
	if !s.hasToken {
		return nil, model.NewMissingTokenError()
	}

	item, err := s.cms.GetItemLive(ctx, collectionID, itemID)
	if err != nil {
		return nil, model.NewUpstreamError(err)
	}
	return item, nil
}

func (s *cmsService) Update(ctx context.Context, collectionID, itemID string, req model.ItemRequest) (*webflow.Item, error) {
	if !s.hasToken {
		return nil, model.NewMissingTokenError()
	}
	if err := req.ValidateUpdate(); err != nil {
		return nil, err
	}

	item, err := s.cms.UpdateItem(ctx, collectionID, itemID, req.Payload())
	if err != nil {
		return nil, model.NewUpstreamError(err)
	}
	return item, nil
}
