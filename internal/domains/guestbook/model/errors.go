package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation       = "GB001"
	ErrCodeEntryNotFound    = "GB002"
	ErrCodeEditCodeMismatch = "GB003"
	ErrCodeMissingToken     = "GB004"
	ErrCodeCreateFailed     = "GB005"
	ErrCodeUpdateFailed     = "GB006"
	ErrCodeCountFailed      = "GB007"
)

// Errors
var (
	ErrEntryNotFound    = errors.New("guestbook entry not found")
	ErrEditCodeMismatch = errors.New("edit code does not match")
	ErrMissingToken     = errors.New("missing API token")
)

// GuestbookError custom error type
type GuestbookError struct {
	Code    string
	Message string
	Err     error
}

func (e *GuestbookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GuestbookError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewValidationError(err error) *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeValidation,
		Message: "Invalid guestbook submission",
		Err:     err,
	}
}

func NewEntryNotFoundError() *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeEntryNotFound,
		Message: "Guestbook entry not found",
		Err:     ErrEntryNotFound,
	}
}

func NewEditCodeMismatchError() *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeEditCodeMismatch,
		Message: "Edit code is incorrect",
		Err:     ErrEditCodeMismatch,
	}
}

func NewMissingTokenError() *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeMissingToken,
		Message: "Missing API token",
		Err:     ErrMissingToken,
	}
}

func NewCreateFailedError(err error) *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeCreateFailed,
		Message: "Failed to create guestbook entry",
		Err:     err,
	}
}

func NewUpdateFailedError(err error) *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeUpdateFailed,
		Message: "Failed to update guestbook entry",
		Err:     err,
	}
}

func NewCountFailedError(err error) *GuestbookError {
	return &GuestbookError{
		Code:    ErrCodeCountFailed,
		Message: "Failed to count guestbook entries",
		Err:     err,
	}
}
