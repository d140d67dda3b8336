package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	ErrImageTooLarge       = errors.New("image too large")
	ErrUnsupportedImage    = errors.New("unsupported image format")
	ErrImageDecode         = errors.New("not an image")
	allowedImageFormats    = map[string]string{"jpeg": "image/jpeg", "png": "image/png", "gif": "image/gif", "webp": "image/webp"}
	compressionQualityStep = []int{85, 75, 65, 55}
)

type ImageProcessor struct {
	MaxSize      int64 // bytes, upload hard limit
	TargetSize   int64 // bytes, compress above this
	MaxDimension int   // px, longest edge after compression
}

func NewImageProcessor(maxSize, targetSize int64, maxDimension int) *ImageProcessor {
	return &ImageProcessor{
		MaxSize:      maxSize,
		TargetSize:   targetSize,
		MaxDimension: maxDimension,
	}
}

// ImageInfo là kết quả của ValidateImage
type ImageInfo struct {
	Format      string // jpeg, png, gif, webp
	ContentType string
	Width       int
	Height      int
}

// ValidateImage kiểm tra size và format thật của file (không tin Content-Type của client)
func (p *ImageProcessor) ValidateImage(data []byte) (*ImageInfo, error) {
	if p.MaxSize > 0 && int64(len(data)) > p.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrImageTooLarge, len(data), p.MaxSize)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	contentType, ok := allowedImageFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}
	return &ImageInfo{
		Format:      format,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// NeedsCompression: file lớn hơn TargetSize hoặc cạnh dài hơn MaxDimension.
// GIF được giữ nguyên để không mất animation.
func (p *ImageProcessor) NeedsCompression(data []byte, info *ImageInfo) bool {
	if info == nil || info.Format == "gif" {
		return false
	}
	if p.TargetSize > 0 && int64(len(data)) > p.TargetSize {
		return true
	}
	return p.MaxDimension > 0 && (info.Width > p.MaxDimension || info.Height > p.MaxDimension)
}

// Compress: fit vào MaxDimension → encode JPEG, giảm quality dần cho tới khi <= TargetSize.
// Trả về bytes cuối cùng dù vẫn lớn hơn TargetSize ở quality thấp nhất.
func (p *ImageProcessor) Compress(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	bounds := img.Bounds()
	if p.MaxDimension > 0 && (bounds.Dx() > p.MaxDimension || bounds.Dy() > p.MaxDimension) {
		img = imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)
	}

	var out []byte
	for _, quality := range compressionQualityStep {
		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("cannot encode jpeg at quality %d: %w", quality, err)
		}
		out = b.Bytes()
		if p.TargetSize <= 0 || int64(len(out)) <= p.TargetSize {
			break
		}
	}
	return out, nil
}
