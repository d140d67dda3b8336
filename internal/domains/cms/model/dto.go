package model

import (
	"webflow-forms-backend/internal/infrastructure/webflow"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = webflow.MaxPageSize
)

// ItemRequest là body của create / patch
type ItemRequest struct {
	FieldData  webflow.FieldData `json:"fieldData"`
	IsArchived *bool             `json:"isArchived,omitempty"`
	IsDraft    *bool             `json:"isDraft,omitempty"`
	LocaleID   string            `json:"localeId,omitempty"`
}

// FieldError là một lỗi validate theo field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r ItemRequest) Payload() webflow.ItemPayload {
	return webflow.ItemPayload{
		FieldData:  r.FieldData,
		IsArchived: r.IsArchived,
		IsDraft:    r.IsDraft,
	}
}

// ValidateCreate: fieldData bắt buộc, name + slug bắt buộc
func (r ItemRequest) ValidateCreate() error {
	if err := r.ValidateUpdate(); err != nil {
		return err
	}

	var fields []FieldError
	if !hasText(r.FieldData, "name") {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if !hasText(r.FieldData, "slug") {
		fields = append(fields, FieldError{Field: "slug", Message: "Slug is required"})
	}
	if len(fields) > 0 {
		return NewValidationError("Name and slug are required fields", fields...)
	}
	return nil
}

func (r ItemRequest) ValidateUpdate() error {
	if r.FieldData == nil {
		return NewValidationError("Field data is required")
	}
	return nil
}

// ClampLimit: mặc định 20, tối đa 100
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func hasText(data webflow.FieldData, key string) bool {
	s, ok := data[key].(string)
	return ok && s != ""
}
