package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeMissingToken = "CMS001"
	ErrCodeValidation   = "CMS002"
	ErrCodeUpstream     = "CMS003"
)

var ErrMissingToken = errors.New("missing API token")

// CMSError custom error type
type CMSError struct {
	Code             string
	Message          string
	ValidationErrors []FieldError
	Err              error
}

func (e *CMSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CMSError) Unwrap() error {
	return e.Err
}

func NewMissingTokenError() *CMSError {
	return &CMSError{Code: ErrCodeMissingToken, Message: "Server configuration error: Missing API token", Err: ErrMissingToken}
}

func NewValidationError(message string, fields ...FieldError) *CMSError {
	return &CMSError{Code: ErrCodeValidation, Message: message, ValidationErrors: fields}
}

func NewUpstreamError(err error) *CMSError {
	return &CMSError{Code: ErrCodeUpstream, Message: "Webflow API error", Err: err}
}
