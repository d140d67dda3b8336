package repository

import (
	"context"
	"time"

	"webflow-forms-backend/internal/domains/uploadsession/model"
)

// Repository lưu upload session. Get trả nil, nil khi không có.
type Repository interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
