package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"webflow-forms-backend/internal/domains/image/model"
	sessionmodel "webflow-forms-backend/internal/domains/uploadsession/model"
	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/pkg/logger"
)

type imageService struct {
	store     ObjectStore
	processor *storage.ImageProcessor
	sessions  SessionRecorder
	cfg       Config
	newID     func() string
}

// NewImageService: store nil → R2 chưa cấu hình, mọi request trả NotConfigured.
// processor nil → không nén. sessions nil → bỏ qua session_id.
func NewImageService(store ObjectStore, processor *storage.ImageProcessor, sessions SessionRecorder, cfg Config) ServiceInterface {
	return &imageService{
		store:     store,
		processor: processor,
		sessions:  sessions,
		cfg:       cfg,
		newID:     func() string { return strings.ToLower(ulid.Make().String()) },
	}
}

// =====================================================
// DIRECT UPLOAD
// =====================================================

func (s *imageService) Upload(ctx context.Context, req model.UploadRequest) (*model.UploadResult, error) {
	// Step 1: Validate
	if s.store == nil {
		return nil, model.NewNotConfiguredError()
	}
	f := req.File
	if f == nil {
		return nil, model.NewNoFileError()
	}
	if !model.IsAllowedType(f.ContentType, s.cfg.AllowedTypes) {
		return nil, model.NewInvalidTypeError()
	}
	if s.cfg.MaxFileSize > 0 && f.Size() > s.cfg.MaxFileSize {
		return nil, model.NewTooLargeError(f.Size(), s.cfg.MaxFileSize)
	}

	// Step 2: Nén nếu cần
	data, contentType, ext, compressed := s.prepare(f.Data, f.ContentType, model.Extension(f.FileName))

	// Step 3: Put lên R2
	key := model.ObjectKey(s.newID(), ext)
	logger.Info("⬆️ Writing to R2", map[string]interface{}{
		"file_key":   key,
		"bytes":      len(data),
		"compressed": compressed,
	})

	publicURL, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, model.NewUploadFailedError(err)
	}

	result := &model.UploadResult{
		Success:    true,
		FileKey:    key,
		PublicURL:  publicURL,
		FileName:   f.FileName,
		FileSize:   int64(len(data)),
		FileType:   contentType,
		Compressed: compressed,
	}

	// Step 4: Ghi vào upload session (lỗi chỉ log, ảnh đã nằm trên R2)
	if req.RecordsSession() && s.sessions != nil {
		img := sessionmodel.UploadedImage{
			URL:      publicURL,
			FileKey:  key,
			Alt:      req.Alt,
			FileName: f.FileName,
			FileSize: result.FileSize,
			MimeType: contentType,
		}
		if _, err := s.sessions.AddImage(ctx, req.SessionID, req.UploadID, img); err != nil {
			logger.ErrorWithFields("Failed to record upload in session", err, map[string]interface{}{
				"session_id": req.SessionID,
				"upload_id":  req.UploadID,
			})
		} else {
			result.SessionID = req.SessionID
		}
	}

	logger.Info("✅ Image uploaded successfully", map[string]interface{}{
		"file_key":   key,
		"public_url": publicURL,
	})
	return result, nil
}

// prepare nén ảnh lớn thành JPEG; GIF và file không decode được giữ nguyên
func (s *imageService) prepare(data []byte, contentType, ext string) ([]byte, string, string, bool) {
	if s.processor == nil {
		return data, contentType, ext, false
	}

	info, err := s.processor.ValidateImage(data)
	if err != nil {
		logger.Debug("Skipping compression: " + err.Error())
		return data, contentType, ext, false
	}
	if !s.processor.NeedsCompression(data, info) {
		return data, contentType, ext, false
	}

	out, err := s.processor.Compress(data)
	if err != nil || len(out) >= len(data) {
		return data, contentType, ext, false
	}
	return out, "image/jpeg", "jpg", true
}

// =====================================================
// PRESIGNED UPLOAD
// =====================================================

func (s *imageService) PresignUpload(ctx context.Context, req model.PresignRequest) (*model.PresignResult, error) {
	// Step 1: Validate
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}
	if !model.IsAllowedType(req.FileType, s.cfg.AllowedTypes) {
		return nil, model.NewInvalidTypeError()
	}
	if s.store == nil {
		return nil, model.NewNotConfiguredError()
	}

	// Step 2: Presign
	key := model.ObjectKey(s.newID(), model.Extension(req.FileName))
	uploadURL, err := s.store.PresignedPutURL(ctx, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, model.NewUploadFailedError(err)
	}

	logger.Info("Generated upload URL", map[string]interface{}{
		"file_key":   key,
		"expires_in": s.cfg.PresignExpiry.String(),
	})

	return &model.PresignResult{
		Success:   true,
		UploadURL: uploadURL,
		FileKey:   key,
		PublicURL: s.store.PublicURL(key),
		ExpiresIn: int(s.cfg.PresignExpiry.Seconds()),
	}, nil
}
