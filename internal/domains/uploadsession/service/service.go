package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"webflow-forms-backend/internal/domains/uploadsession/model"
	"webflow-forms-backend/internal/domains/uploadsession/repository"
	"webflow-forms-backend/internal/shared/utils"
	"webflow-forms-backend/pkg/logger"
)

var errTooManyImages = errors.New("session image limit reached")

type uploadSessionService struct {
	repo    repository.Repository
	remover ObjectRemover
	ttl     time.Duration
	now     func() time.Time

	// AddImage là read-modify-write
	mu sync.Mutex
}

// NewUploadSessionService: remover có thể nil khi R2 chưa cấu hình
func NewUploadSessionService(repo repository.Repository, remover ObjectRemover, ttl time.Duration) ServiceInterface {
	return &uploadSessionService{
		repo:    repo,
		remover: remover,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *uploadSessionService) Load(ctx context.Context, id string) (*model.Session, error) {
	if !utils.IsValidUUID(id) {
		return nil, model.NewInvalidSessionIDError()
	}

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, model.NewStorageError(err)
	}
	if session == nil {
		return nil, model.NewSessionNotFoundError()
	}
	return session, nil
}

func (s *uploadSessionService) Save(ctx context.Context, id string, req model.SaveRequest) (*model.Session, error) {
	// Step 1: Validate
	if !utils.IsValidUUID(id) {
		return nil, model.NewInvalidSessionIDError()
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidImagesError(err)
	}

	// Step 2: Replace images
	images := req.Images
	if images == nil {
		images = map[string]model.UploadedImage{}
	}
	session := &model.Session{ID: id, Images: images, UpdatedAt: s.now().UTC()}

	// Step 3: Persist
	if err := s.repo.Save(ctx, session, s.ttl); err != nil {
		return nil, model.NewStorageError(err)
	}
	return session, nil
}

func (s *uploadSessionService) AddImage(ctx context.Context, id, uploadID string, img model.UploadedImage) (*model.Session, error) {
	if !utils.IsValidUUID(id) {
		return nil, model.NewInvalidSessionIDError()
	}
	if err := img.Validate(); err != nil {
		return nil, model.NewInvalidImagesError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, model.NewStorageError(err)
	}
	if session == nil {
		session = &model.Session{ID: id, Images: map[string]model.UploadedImage{}}
	}
	if _, exists := session.Images[uploadID]; !exists && len(session.Images) >= model.MaxImagesPerSession {
		return nil, model.NewInvalidImagesError(errTooManyImages)
	}

	session.Images[uploadID] = img
	session.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, session, s.ttl); err != nil {
		return nil, model.NewStorageError(err)
	}

	logger.Debug("Upload session " + id + " recorded image " + uploadID)
	return session, nil
}

func (s *uploadSessionService) Delete(ctx context.Context, id string, purge bool) error {
	if !utils.IsValidUUID(id) {
		return model.NewInvalidSessionIDError()
	}

	if purge && s.remover != nil {
		session, err := s.repo.Get(ctx, id)
		if err != nil {
			return model.NewStorageError(err)
		}
		if session != nil {
			if keys := session.FileKeys(); len(keys) > 0 {
				if err := s.remover.RemoveObjects(ctx, keys); err != nil {
					// ảnh mồ côi trên R2 không chặn việc xóa session
					logger.ErrorWithFields("Failed to remove session objects", err, map[string]interface{}{
						"session_id": id,
						"keys":       len(keys),
					})
				}
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return model.NewStorageError(err)
	}
	return nil
}
