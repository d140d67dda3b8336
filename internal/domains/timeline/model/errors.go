package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation    = "TL001"
	ErrCodeNotConfigured = "TL002"
	ErrCodeCreateFailed  = "TL003"
	ErrCodeEventNotFound = "TL004"
	ErrCodeUpdateFailed  = "TL005"
)

var (
	ErrMissingToken        = errors.New("missing API token")
	ErrMissingSiteID       = errors.New("missing site ID")
	ErrMissingCollectionID = errors.New("missing collection ID")
	ErrEventNotFound       = errors.New("timeline event not found")
)

// TimelineError custom error type
type TimelineError struct {
	Code    string
	Message string
	Err     error
}

func (e *TimelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TimelineError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) *TimelineError {
	return &TimelineError{Code: ErrCodeValidation, Message: "Invalid timeline submission", Err: err}
}

// Thiếu config: Message được hiển thị nguyên văn trên trang form
func NewMissingTokenError() *TimelineError {
	return &TimelineError{Code: ErrCodeNotConfigured, Message: "Missing API token", Err: ErrMissingToken}
}

func NewMissingSiteIDError() *TimelineError {
	return &TimelineError{Code: ErrCodeNotConfigured, Message: "Missing site ID", Err: ErrMissingSiteID}
}

func NewMissingCollectionIDError() *TimelineError {
	return &TimelineError{Code: ErrCodeNotConfigured, Message: "Missing collection ID", Err: ErrMissingCollectionID}
}

// UserMessage là text hiển thị trên trang form sau redirect
func UserMessage(err error) string {
	var tErr *TimelineError
	if errors.As(err, &tErr) && tErr.Code == ErrCodeNotConfigured {
		return tErr.Message
	}
	return err.Error()
}

func NewCreateFailedError(err error) *TimelineError {
	return &TimelineError{Code: ErrCodeCreateFailed, Message: "Failed to create timeline event", Err: err}
}

func NewEventNotFoundError() *TimelineError {
	return &TimelineError{Code: ErrCodeEventNotFound, Message: "Timeline event not found", Err: ErrEventNotFound}
}

func NewUpdateFailedError(err error) *TimelineError {
	return &TimelineError{Code: ErrCodeUpdateFailed, Message: "Failed to attach images", Err: err}
}
