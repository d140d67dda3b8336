package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"webflow-forms-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrStorageNotConfigured = errors.New("object storage is not configured")

// R2Storage handles file uploads to Cloudflare R2 (S3-compatible API)
type R2Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewR2Storage khởi tạo S3 client trỏ tới R2 endpoint của account
func NewR2Storage(cfg config.R2Config) (*R2Storage, error) {
	if !cfg.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		// Region cố định → minio không gọi GetBucketLocation
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create r2 client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		// Fallback: public bucket URL mặc định của R2
		publicURL = fmt.Sprintf("https://%s.r2.dev", fallbackAccount(cfg.AccountID))
	}

	return &R2Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func fallbackAccount(accountID string) string {
	if accountID == "" {
		return "pub"
	}
	return accountID
}

// Upload uploads a file to R2 and returns its public URL
// key: đường dẫn file trong bucket (vd: images/01J9Z3.../photo.jpg)
func (s *R2Storage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "public, max-age=31536000",
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to r2: %w", err)
	}

	return s.PublicURL(key), nil
}

// PresignedPutURL tạo URL cho browser PUT file trực tiếp lên R2
func (s *R2Storage) PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign put: %w", err)
	}
	return u.String(), nil
}

// PublicURL: <public base>/<key>
func (s *R2Storage) PublicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + "/" + strings.Join(segments, "/")
}

// Delete xóa một file khỏi R2
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// RemoveObjects xóa nhiều objects cùng lúc (dọn ảnh của upload session)
func (s *R2Storage) RemoveObjects(ctx context.Context, keys []string) error {
	switch len(keys) {
	case 0:
		return nil
	case 1:
		// một key → DeleteObject
		return s.Delete(ctx, keys[0])
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	for rmErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			return fmt.Errorf("failed to remove %s: %w", rmErr.ObjectName, rmErr.Err)
		}
	}
	return nil
}

// HealthCheck kiểm tra bucket tồn tại và credentials hợp lệ
func (s *R2Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
