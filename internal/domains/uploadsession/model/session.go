package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UploadedImage là ảnh đã nằm trên object storage, chờ gắn vào CMS item
type UploadedImage struct {
	URL      string `json:"url"`
	FileKey  string `json:"fileKey,omitempty"`
	Alt      string `json:"alt,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

func (i UploadedImage) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.URL, validation.Required.Error("url is required"), is.URL),
		validation.Field(&i.FileSize, validation.Min(int64(0))),
	)
}

// Session gom các ảnh upload của một lần điền form, key là upload ID
// (với form timeline: "photo1", "photo2").
type Session struct {
	ID        string                   `json:"id"`
	Images    map[string]UploadedImage `json:"images"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// Image trả về ảnh theo upload ID
func (s *Session) Image(uploadID string) (UploadedImage, bool) {
	if s == nil {
		return UploadedImage{}, false
	}
	img, ok := s.Images[uploadID]
	return img, ok
}

// FileKeys là object key của tất cả ảnh trong session (bỏ ảnh không có key)
func (s *Session) FileKeys() []string {
	keys := make([]string, 0, len(s.Images))
	for _, img := range s.Images {
		if img.FileKey != "" {
			keys = append(keys, img.FileKey)
		}
	}
	return keys
}

// SaveRequest body của PUT /api/uploads/sessions/:sessionId
type SaveRequest struct {
	Images map[string]UploadedImage `json:"images"`
}

func (r SaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Images, validation.Length(0, MaxImagesPerSession)),
	)
}

const (
	MaxImagesPerSession = 20
	KeyPrefix           = "upload_session:"
)
