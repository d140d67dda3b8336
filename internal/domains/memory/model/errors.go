package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation    = "MEM001"
	ErrCodeNotConfigured = "MEM002"
	ErrCodeCreateFailed  = "MEM003"
)

var (
	ErrMissingToken        = errors.New("missing API token")
	ErrMissingSiteID       = errors.New("missing site ID")
	ErrMissingCollectionID = errors.New("missing collection ID")
)

// MemoryError custom error type
type MemoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *MemoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *MemoryError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) *MemoryError {
	return &MemoryError{Code: ErrCodeValidation, Message: "Invalid memory submission", Err: err}
}

func NewMissingTokenError() *MemoryError {
	return &MemoryError{Code: ErrCodeNotConfigured, Message: "Missing API token", Err: ErrMissingToken}
}

func NewMissingSiteIDError() *MemoryError {
	return &MemoryError{Code: ErrCodeNotConfigured, Message: "Missing site ID", Err: ErrMissingSiteID}
}

func NewMissingCollectionIDError() *MemoryError {
	return &MemoryError{Code: ErrCodeNotConfigured, Message: "Missing collection ID", Err: ErrMissingCollectionID}
}

func NewCreateFailedError(err error) *MemoryError {
	return &MemoryError{Code: ErrCodeCreateFailed, Message: "Failed to create memory", Err: err}
}

// UserMessage là text hiển thị trên form sau redirect
func UserMessage(err error) string {
	var mErr *MemoryError
	if errors.As(err, &mErr) && mErr.Code == ErrCodeNotConfigured {
		return mErr.Message
	}
	return err.Error()
}
