package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeSessionNotFound  = "UPS001"
	ErrCodeInvalidSessionID = "UPS002"
	ErrCodeInvalidImages    = "UPS003"
	ErrCodeStorage          = "UPS004"
)

var (
	ErrSessionNotFound  = errors.New("upload session not found")
	ErrInvalidSessionID = errors.New("invalid upload session id")
)

// SessionError custom error type
type SessionError struct {
	Code    string
	Message string
	Err     error
}

func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func NewSessionNotFoundError() *SessionError {
	return &SessionError{Code: ErrCodeSessionNotFound, Message: "Upload session not found", Err: ErrSessionNotFound}
}

func NewInvalidSessionIDError() *SessionError {
	return &SessionError{Code: ErrCodeInvalidSessionID, Message: "Session ID must be a UUID", Err: ErrInvalidSessionID}
}

func NewInvalidImagesError(err error) *SessionError {
	return &SessionError{Code: ErrCodeInvalidImages, Message: "Invalid session images", Err: err}
}

func NewStorageError(err error) *SessionError {
	return &SessionError{Code: ErrCodeStorage, Message: "Upload session storage failed", Err: err}
}
