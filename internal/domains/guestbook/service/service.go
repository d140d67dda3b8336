package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"webflow-forms-backend/internal/domains/guestbook/model"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/sequence"
	"webflow-forms-backend/internal/shared/utils"
	"webflow-forms-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type guestbookService struct {
	cms          webflow.CMS
	seq          *sequence.Allocator
	collectionID string
	hasToken     bool
	now          func() time.Time
}

func NewGuestbookService(
	cms webflow.CMS,
	seq *sequence.Allocator,
	collectionID string,
	hasToken bool,
) ServiceInterface {
	if collectionID == "" {
		collectionID = model.DefaultCollectionID
	}
	return &guestbookService{
		cms:          cms,
		seq:          seq,
		collectionID: collectionID,
		hasToken:     hasToken,
		now:          time.Now,
	}
}

// =====================================================
// SUBMIT
// =====================================================

func (s *guestbookService) Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error) {
	// Step 1: Token
	if !s.hasToken {
		return nil, model.NewMissingTokenError()
	}

	// Step 2: Validate request
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	collectionID := req.CollectionID
	if collectionID == "" {
		collectionID = s.collectionID
	}

	if req.IsEdit() {
		return s.edit(ctx, collectionID, req)
	}
	return s.create(ctx, collectionID, req)
}

func (s *guestbookService) create(ctx context.Context, collectionID string, req model.SubmitRequest) (*model.SubmitResult, error) {
	now := s.now()

	// Step 1: Next guestbook-id
	guestbookID := s.seq.Next(ctx, collectionID, model.CMSGuestbookID)
	editCode := utils.GenerateEditCode()

	// Step 2: Build payload
	payload := model.BuildCreatePayload(req, guestbookID, editCode, now)

	logger.Info("📤 Creating guestbook entry", map[string]interface{}{
		"collection_id": collectionID,
		"guestbook_id":  guestbookID,
		"slug":          payload.FieldData[model.CMSSlug],
		"card_color":    req.CardColor,
	})

	// Step 3: Create item
	item, err := s.cms.CreateItem(ctx, collectionID, payload)
	if err != nil {
		return nil, model.NewCreateFailedError(err)
	}

	// Step 4: Publish (item đã tạo, lỗi publish không fail submission)
	published := s.publish(ctx, collectionID, item.ID)

	logger.Info("✅ Guestbook submission complete", map[string]interface{}{
		"item_id":      item.ID,
		"guestbook_id": guestbookID,
		"published":    published,
	})

	return &model.SubmitResult{
		ItemID:      item.ID,
		GuestbookID: guestbookID,
		EditCode:    editCode,
		Published:   published,
	}, nil
}

func (s *guestbookService) edit(ctx context.Context, collectionID string, req model.SubmitRequest) (*model.SubmitResult, error) {
	// Step 1: Load entry
	existing, err := s.cms.GetItem(ctx, collectionID, req.ItemID)
	if err != nil {
		if webflow.IsNotFound(err) {
			return nil, model.NewEntryNotFoundError()
		}
		return nil, model.NewUpdateFailedError(err)
	}

	// Step 2: Verify edit code
	stored, _ := existing.FieldData[model.CMSEditCode].(string)
	if !editCodeMatches(stored, req.EditCode) {
		logger.Warn("Guestbook edit rejected: edit code mismatch", map[string]interface{}{
			"item_id": req.ItemID,
		})
		return nil, model.NewEditCodeMismatchError()
	}

	// Step 3: Update only the submitted fields
	payload := model.BuildUpdatePayload(req, s.now())
	if _, err := s.cms.UpdateItem(ctx, collectionID, req.ItemID, payload); err != nil {
		return nil, model.NewUpdateFailedError(err)
	}

	// Step 4: Publish
	published := s.publish(ctx, collectionID, req.ItemID)

	logger.Info("✅ Guestbook entry updated", map[string]interface{}{
		"item_id":   req.ItemID,
		"fields":    len(payload.FieldData),
		"published": published,
	})

	return &model.SubmitResult{
		ItemID:      req.ItemID,
		GuestbookID: sequence.NumberField(existing.FieldData, model.CMSGuestbookID),
		Edited:      true,
		Published:   published,
	}, nil
}

func (s *guestbookService) publish(ctx context.Context, collectionID, itemID string) bool {
	if _, err := s.cms.PublishItems(ctx, collectionID, itemID); err != nil {
		logger.ErrorWithFields("⚠️ Error publishing guestbook item", err, map[string]interface{}{
			"item_id": itemID,
		})
		return false
	}
	return true
}

// editCodeMatches so sánh không phân biệt hoa thường; code rỗng không bao giờ khớp
func editCodeMatches(stored, given string) bool {
	stored = strings.ToUpper(strings.TrimSpace(stored))
	given = strings.ToUpper(strings.TrimSpace(given))
	if stored == "" || given == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// =====================================================
// COUNT
// =====================================================

func (s *guestbookService) Count(ctx context.Context) (*model.CountResult, error) {
	list, err := s.cms.ListItemsLive(ctx, s.collectionID, webflow.ListOptions{Limit: 1})
	if err != nil {
		return nil, model.NewCountFailedError(err)
	}
	return &model.CountResult{
		Count:     list.Pagination.Total,
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *guestbookService) Status() model.StatusResponse {
	return model.StatusResponse{
		Message:         "Guestbook API is working! Use POST to submit data.",
		HasToken:        s.hasToken,
		HasCollectionID: s.collectionID != "",
		CollectionID:    s.collectionID,
		Timestamp:       utils.FormatISO(s.now()),
	}
}
