package webflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingToken  = errors.New("webflow API token is not configured")
	ErrMissingSiteID = errors.New("webflow site ID is not configured")
)

// APIError là response lỗi (non-2xx) từ Webflow hoặc từ S3 khi upload asset
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("webflow api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("webflow api error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// StatusCode trả về HTTP status của APIError, 0 nếu err không phải APIError
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
