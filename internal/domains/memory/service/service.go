package service

import (
	"context"
	"time"

	"webflow-forms-backend/internal/domains/memory/model"
	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/media"
	"webflow-forms-backend/internal/shared/pipeline"
	"webflow-forms-backend/internal/shared/sequence"
	"webflow-forms-backend/internal/shared/utils"
	"webflow-forms-backend/pkg/logger"
)

type memoryService struct {
	cms    webflow.CMS
	assets *media.AssetAttacher
	seq    *sequence.Allocator
	cfg    Config
	now    func() time.Time
}

func NewMemoryService(cms webflow.CMS, assets *media.AssetAttacher, seq *sequence.Allocator, cfg Config) ServiceInterface {
	if cfg.CardOptions == (storage.CardSizeOptions{}) {
		cfg.CardOptions = storage.DefaultCardSizeOptions
	}
	return &memoryService{
		cms:    cms,
		assets: assets,
		seq:    seq,
		cfg:    cfg,
		now:    time.Now,
	}
}

// =====================================================
// SUBMIT
// =====================================================

func (s *memoryService) Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error) {
	var (
		now         = s.now()
		assets      model.Assets
		orientation = storage.OrientationSquare
		memoryID    int
		payload     webflow.ItemPayload
		item        *webflow.Item
	)

	err := pipeline.Run(ctx,
		pipeline.Step{Name: "validate", Run: func(ctx context.Context) error {
			return s.validate(req)
		}},
		pipeline.Step{Name: "upload assets", Run: func(ctx context.Context) error {
			// Orientation lấy từ bytes gốc, trước khi nén
			if req.Photo != nil {
				orientation = storage.DetectOrientation(req.Photo.Data)
			}
			assets.ProfileImage = s.upload(ctx, req.ProfileImage)
			assets.Photo = s.upload(ctx, req.Photo)
			return nil
		}},
		pipeline.Step{Name: "allocate memory id", Run: func(ctx context.Context) error {
			memoryID = s.seq.Next(ctx, s.cfg.CollectionID, model.CMSMemoryID)
			return nil
		}},
		pipeline.Step{Name: "assemble payload", Run: func(ctx context.Context) error {
			payload = model.BuildCreatePayload(req, memoryID, utils.GenerateEditCode(), assets, orientation, s.cfg.CardOptions, now)
			return nil
		}},
		pipeline.Step{Name: "create item", Run: func(ctx context.Context) error {
			logger.Info("📤 Creating memory item", map[string]interface{}{
				"name":        payload.FieldData[model.CMSName],
				"memory_id":   memoryID,
				"orientation": orientation.GridSpan(),
			})
			created, err := s.cms.CreateItem(ctx, s.cfg.CollectionID, payload)
			if err != nil {
				return model.NewCreateFailedError(err)
			}
			item = created
			return nil
		}},
	)
	if err != nil {
		return nil, err
	}

	published := true
	if _, err := s.cms.PublishItems(ctx, s.cfg.CollectionID, item.ID); err != nil {
		logger.ErrorWithFields("⚠️ Error publishing memory item", err, map[string]interface{}{
			"item_id": item.ID,
		})
		published = false
	}

	logger.Info("✅ Memory Journal submission complete", map[string]interface{}{
		"item_id":     item.ID,
		"memory_id":   memoryID,
		"orientation": orientation.GridSpan(),
	})

	return &model.SubmitResult{
		ItemID:      item.ID,
		MemoryID:    memoryID,
		Orientation: orientation.GridSpan(),
		PhotoAdded:  assets.Photo != nil,
		Published:   published,
	}, nil
}

func (s *memoryService) validate(req model.SubmitRequest) error {
	if !s.cfg.HasWriteToken && !s.cfg.HasReadToken {
		return model.NewMissingTokenError()
	}
	if req.HasFiles() && s.cfg.SiteID == "" {
		return model.NewMissingSiteIDError()
	}
	if s.cfg.CollectionID == "" {
		return model.NewMissingCollectionIDError()
	}
	if err := req.Validate(); err != nil {
		return model.NewValidationError(err)
	}
	return nil
}

// upload lỗi → log và bỏ qua ảnh
func (s *memoryService) upload(ctx context.Context, f *form.File) *webflow.ImageRef {
	if f == nil {
		return nil
	}
	ref, err := s.assets.Upload(ctx, f, "")
	if err != nil {
		logger.ErrorWithFields("❌ Failed to upload memory image", err, map[string]interface{}{
			"field": f.FieldName,
		})
		return nil
	}
	return ref
}

func (s *memoryService) Status() model.StatusResponse {
	return model.StatusResponse{
		Message:   "Memory Journal API is working! Use POST to submit data with file uploads.",
		Timestamp: utils.FormatISO(s.now()),
		Config: model.StatusConfig{
			HasWriteToken:   s.cfg.HasWriteToken,
			HasReadToken:    s.cfg.HasReadToken,
			HasCollectionID: s.cfg.CollectionID != "",
			HasSiteID:       s.cfg.SiteID != "",
			CollectionID:    s.cfg.CollectionID,
		},
	}
}
