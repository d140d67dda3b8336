package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNoFile        = "IMG001"
	ErrCodeInvalidType   = "IMG002"
	ErrCodeTooLarge      = "IMG003"
	ErrCodeNotConfigured = "IMG004"
	ErrCodeUploadFailed  = "IMG005"
	ErrCodeValidation    = "IMG006"
)

var ErrNotConfigured = errors.New("r2 storage not configured")

// ImageError custom error type
type ImageError struct {
	Code    string
	Message string
	Err     error
}

func (e *ImageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

func NewNoFileError() *ImageError {
	return &ImageError{Code: ErrCodeNoFile, Message: "No file provided"}
}

func NewInvalidTypeError() *ImageError {
	return &ImageError{Code: ErrCodeInvalidType, Message: "Invalid file type. Only images (JPEG, PNG, GIF, WebP) are allowed."}
}

func NewTooLargeError(size, max int64) *ImageError {
	return &ImageError{
		Code: ErrCodeTooLarge,
		Message: fmt.Sprintf("File too large (%sMB). Images should be compressed to ~1MB on the client. Maximum allowed is %sMB.",
			megabytes(size), megabytes(max)),
	}
}

func NewNotConfiguredError() *ImageError {
	return &ImageError{Code: ErrCodeNotConfigured, Message: "R2 storage not configured", Err: ErrNotConfigured}
}

func NewUploadFailedError(err error) *ImageError {
	return &ImageError{Code: ErrCodeUploadFailed, Message: "Failed to upload image", Err: err}
}

func NewValidationError(err error) *ImageError {
	return &ImageError{Code: ErrCodeValidation, Message: "Missing fileName or fileType", Err: err}
}

// megabytes: 1572864 → "1.50"
func megabytes(n int64) string {
	return fmt.Sprintf("%.2f", float64(n)/(1024*1024))
}
