package service

import (
	"context"

	"webflow-forms-backend/internal/domains/guestbook/model"
)

// =====================================================
// GUESTBOOK SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Submit tạo entry mới, hoặc sửa entry khi request có itemId + edit code
	Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error)

	// Count đếm entry đang live
	Count(ctx context.Context) (*model.CountResult, error)

	// Status cho debug endpoint
	Status() model.StatusResponse
}
