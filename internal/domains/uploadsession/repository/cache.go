package repository

import (
	"context"
	"time"

	"webflow-forms-backend/internal/domains/uploadsession/model"
	"webflow-forms-backend/pkg/cache"
)

type cacheRepository struct {
	cache cache.Cache
}

// NewCacheRepository lưu session trong cache (Redis ở production) với TTL
func NewCacheRepository(c cache.Cache) Repository {
	return &cacheRepository{cache: c}
}

func (r *cacheRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	found, err := r.cache.Get(ctx, model.KeyPrefix+id, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if session.Images == nil {
		session.Images = map[string]model.UploadedImage{}
	}
	return &session, nil
}

func (r *cacheRepository) Save(ctx context.Context, session *model.Session, ttl time.Duration) error {
	return r.cache.Set(ctx, model.KeyPrefix+session.ID, session, ttl)
}

func (r *cacheRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, model.KeyPrefix+id)
}
