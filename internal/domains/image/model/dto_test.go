package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"photo.JPG":      "jpg",
		"scan.webp":      "webp",
		"archive.tar.gz": "gz",
		"noext":          "jpg",
		"weird.p$g":      "jpg",
		"long.abcdefgh":  "jpg",
		"":               "jpg",
	}
	for in, want := range tests {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestIsAllowedType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png"}

	assert.True(t, IsAllowedType("image/jpeg", allowed))
	assert.True(t, IsAllowedType("IMAGE/PNG", allowed))
	assert.True(t, IsAllowedType("image/png; charset=binary", allowed))
	assert.False(t, IsAllowedType("image/gif", allowed))
	assert.False(t, IsAllowedType("", allowed))
}

func TestNewTooLargeError(t *testing.T) {
	err := NewTooLargeError(2*1024*1024, 1536*1024)
	assert.Equal(t, "File too large (2.00MB). Images should be compressed to ~1MB on the client. Maximum allowed is 1.50MB.", err.Error())
}

func TestPresignRequestValidate(t *testing.T) {
	assert.NoError(t, PresignRequest{FileName: "a.jpg", FileType: "image/jpeg"}.Validate())
	assert.Error(t, PresignRequest{FileName: "a.jpg"}.Validate())
	assert.Error(t, PresignRequest{FileType: "image/jpeg"}.Validate())
}
