package service

import (
	"context"
	"time"

	"webflow-forms-backend/internal/domains/timeline/model"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/media"
	"webflow-forms-backend/internal/shared/pipeline"
	"webflow-forms-backend/internal/shared/sequence"
	"webflow-forms-backend/internal/shared/utils"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type timelineService struct {
	cms      webflow.CMS
	assets   *media.AssetAttacher
	seq      *sequence.Allocator
	sessions SessionLoader
	cfg      Config
	now      func() time.Time
}

// NewTimelineService: sessions có thể nil (không có Redis)
func NewTimelineService(
	cms webflow.CMS,
	assets *media.AssetAttacher,
	seq *sequence.Allocator,
	sessions SessionLoader,
	cfg Config,
) ServiceInterface {
	return &timelineService{
		cms:      cms,
		assets:   assets,
		seq:      seq,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

// =====================================================
// SUBMIT
// =====================================================

func (s *timelineService) Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error) {
	var (
		now         = s.now()
		photos      [model.PhotoSlots]*webflow.ImageRef
		eventNumber int
		payload     webflow.ItemPayload
		item        *webflow.Item
	)

	err := pipeline.Run(ctx,
		pipeline.Step{Name: "validate", Run: func(ctx context.Context) error {
			return s.validate(req)
		}},
		pipeline.Step{Name: "upload assets", Run: func(ctx context.Context) error {
			photos = s.resolvePhotos(ctx, req)
			return nil
		}},
		pipeline.Step{Name: "allocate event number", Run: func(ctx context.Context) error {
			eventNumber = s.seq.Next(ctx, s.cfg.CollectionID, model.CMSEventNumber)
			return nil
		}},
		pipeline.Step{Name: "assemble payload", Run: func(ctx context.Context) error {
			payload = model.BuildCreatePayload(req, eventNumber, utils.GenerateEditCode(), photos, now)
			return nil
		}},
		pipeline.Step{Name: "create item", Run: func(ctx context.Context) error {
			logger.Info("📤 Creating timeline item", map[string]interface{}{
				"name":         payload.FieldData[model.CMSName],
				"slug":         payload.FieldData[model.CMSSlug],
				"event_number": eventNumber,
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

	// Publish lỗi không làm fail submission: item đã được tạo
	published := s.publish(ctx, item.ID)
	s.releaseSession(ctx, req.SessionID)

	attached := 0
	for _, p := range photos {
		if p != nil {
			attached++
		}
	}

	logger.Info("✅ Timeline submission complete", map[string]interface{}{
		"item_id":      item.ID,
		"event_number": eventNumber,
		"photos":       attached,
		"published":    published,
	})

	return &model.SubmitResult{
		ItemID:         item.ID,
		EventNumber:    eventNumber,
		PhotosAttached: attached,
		Published:      published,
	}, nil
}

func (s *timelineService) validate(req model.SubmitRequest) error {
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

// resolvePhotos: file upload → URL đã stage → ảnh trong upload session.
// Upload lỗi chỉ log và bỏ ảnh đó.
func (s *timelineService) resolvePhotos(ctx context.Context, req model.SubmitRequest) [model.PhotoSlots]*webflow.ImageRef {
	var photos [model.PhotoSlots]*webflow.ImageRef

	for i, in := range req.Photos {
		if in.File != nil {
			ref, err := s.assets.Upload(ctx, in.File, in.Alt)
			if err != nil {
				logger.ErrorWithFields("❌ Failed to upload timeline photo", err, map[string]interface{}{
					"field": model.FileFields[i],
				})
				continue
			}
			photos[i] = ref
			continue
		}
		photos[i] = media.StagedRef(in.URL, in.Alt)
	}

	if req.SessionID == "" || s.sessions == nil {
		return photos
	}

	session, err := s.sessions.Load(ctx, req.SessionID)
	if err != nil {
		logger.Warn("Upload session unavailable", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return photos
	}
	for i, uploadID := range model.SessionUploadIDs {
		if photos[i] != nil {
			continue
		}
		if img, ok := session.Image(uploadID); ok {
			photos[i] = media.StagedRef(img.URL, img.Alt)
		}
	}
	return photos
}

// releaseSession xóa upload session đã dùng. Object trên R2 giữ lại vì item đang trỏ tới.
func (s *timelineService) releaseSession(ctx context.Context, sessionID string) {
	if sessionID == "" || s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(ctx, sessionID, false); err != nil {
		logger.Warn("Failed to clear upload session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *timelineService) publish(ctx context.Context, itemID string) bool {
	if _, err := s.cms.PublishItems(ctx, s.cfg.CollectionID, itemID); err != nil {
		logger.ErrorWithFields("⚠️ Error publishing timeline item", err, map[string]interface{}{
			"item_id": itemID,
		})
		return false
	}
	return true
}

// =====================================================
// ATTACH IMAGES
// =====================================================

func (s *timelineService) AttachImages(ctx context.Context, req model.AttachImagesRequest) (*model.AttachImagesResult, error) {
	// Step 1: Validate
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}
	if len(req.Images) == 0 {
		return &model.AttachImagesResult{ImagesAttached: []string{}, Message: "No images to attach"}, nil
	}
	if !s.cfg.HasWriteToken && !s.cfg.HasReadToken {
		return nil, model.NewMissingTokenError()
	}
	if s.cfg.CollectionID == "" {
		return nil, model.NewMissingCollectionIDError()
	}

	// Step 2: Build fieldData
	payload := model.BuildAttachPayload(req.Images)
	if len(payload.FieldData) == 0 {
		return &model.AttachImagesResult{ImagesAttached: []string{}, Message: "No valid photo fields"}, nil
	}

	// Step 3: Update item
	updated, err := s.cms.UpdateItem(ctx, s.cfg.CollectionID, req.ItemID, payload)
	if err != nil {
		if webflow.IsNotFound(err) {
			return nil, model.NewEventNotFoundError()
		}
		return nil, model.NewUpdateFailedError(err)
	}

	// Step 4: Publish
	s.publish(ctx, req.ItemID)

	attached := make([]string, 0, len(payload.FieldData))
	for _, field := range model.CMSPhotoFields {
		if _, ok := payload.FieldData[field]; ok {
			attached = append(attached, field)
		}
	}

	return &model.AttachImagesResult{ItemID: updated.ID, ImagesAttached: attached}, nil
}

func (s *timelineService) Status() model.StatusResponse {
	return model.StatusResponse{
		Message:   "Timeline API is working! Use POST to submit data with file uploads.",
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
