// Package media đưa file từ form lên Webflow Assets và trả về giá trị cho
// field Image của CMS item.
package media

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/pkg/logger"
)

var ErrNoImage = errors.New("no image")

type AssetAttacher struct {
	assets    webflow.AssetUploader
	siteID    string
	processor *storage.ImageProcessor
}

// NewAssetAttacher: processor nil → upload nguyên file
func NewAssetAttacher(assets webflow.AssetUploader, siteID string, processor *storage.ImageProcessor) *AssetAttacher {
	return &AssetAttacher{
		assets:    assets,
		siteID:    siteID,
		processor: processor,
	}
}

// Upload đưa f lên Webflow Assets. alt rỗng → dùng tên file.
func (a *AssetAttacher) Upload(ctx context.Context, f *form.File, alt string) (*webflow.ImageRef, error) {
	if f == nil || len(f.Data) == 0 {
		return nil, ErrNoImage
	}

	data, name := a.prepare(f)
	asset, err := a.assets.UploadAsset(ctx, a.siteID, name, data)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", f.FieldName, err)
	}

	if alt == "" {
		alt = f.FileName
	}
	ref := asset.Ref(alt)

	logger.Info("✅ Asset uploaded", map[string]interface{}{
		"field":    f.FieldName,
		"asset_id": asset.ID,
		"bytes":    len(data),
	})
	return &ref, nil
}

// prepare nén ảnh lớn; file không decode được thì giữ nguyên
func (a *AssetAttacher) prepare(f *form.File) ([]byte, string) {
	if a.processor == nil {
		return f.Data, f.FileName
	}

	info, err := a.processor.ValidateImage(f.Data)
	if err != nil {
		logger.Debug("Skipping compression for " + f.FileName + ": " + err.Error())
		return f.Data, f.FileName
	}
	if !a.processor.NeedsCompression(f.Data, info) {
		return f.Data, f.FileName
	}

	compressed, err := a.processor.Compress(f.Data)
	if err != nil || len(compressed) >= len(f.Data) {
		return f.Data, f.FileName
	}
	return compressed, JPEGName(f.FileName)
}

// StagedRef là ảnh đã upload sẵn (R2) chỉ có URL
func StagedRef(url, alt string) *webflow.ImageRef {
	if url == "" {
		return nil
	}
	return &webflow.ImageRef{URL: url, Alt: alt}
}

// JPEGName đổi đuôi file thành .jpg
func JPEGName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "image"
	}
	return base + ".jpg"
}
