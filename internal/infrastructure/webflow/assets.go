package webflow

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
)

// s3FieldOrder là thứ tự field bắt buộc của S3 POST policy upload; file luôn ở cuối
var s3FieldOrder = []string{
	"acl",
	"bucket",
	"X-Amz-Algorithm",
	"X-Amz-Credential",
	"X-Amz-Date",
	"key",
	"Policy",
	"X-Amz-Signature",
	"success_action_status",
	"Content-Type",
	"Cache-Control",
}

// camelCase keys some API versions return, mapped to the S3 form names
var s3FieldAliases = map[string]string{
	"xAmzAlgorithm":       "X-Amz-Algorithm",
	"xAmzCredential":      "X-Amz-Credential",
	"xAmzDate":            "X-Amz-Date",
	"xAmzSignature":       "X-Amz-Signature",
	"successActionStatus": "success_action_status",
	"contentType":         "Content-Type",
	"cacheControl":        "Cache-Control",
	"policy":              "Policy",
}

// AssetUpload là response của "create asset": metadata + presigned S3 POST
type AssetUpload struct {
	ID            string            `json:"id"`
	ContentType   string            `json:"contentType"`
	HostedURL     string            `json:"hostedUrl"`
	AssetURL      string            `json:"assetUrl"`
	UploadURL     string            `json:"uploadUrl"`
	UploadDetails map[string]string `json:"uploadDetails"`
}

// Asset là ảnh đã upload xong, sẵn sàng gắn vào fieldData
type Asset struct {
	ID  string
	URL string
}

// Ref builds the fieldData value for an Image field
func (a *Asset) Ref(alt string) ImageRef {
	return ImageRef{FileID: a.ID, URL: a.URL, Alt: alt}
}

// AssetUploader upload file vào Webflow Assets của site
type AssetUploader interface {
	UploadAsset(ctx context.Context, siteID, fileName string, data []byte) (*Asset, error)
}

var _ AssetUploader = (*Client)(nil)

// CreateAsset đăng ký asset với Webflow; fileHash là MD5 hex của nội dung file
func (c *Client) CreateAsset(ctx context.Context, siteID, fileName, fileHash string) (*AssetUpload, error) {
	if siteID == "" {
		return nil, ErrMissingSiteID
	}
	body := map[string]string{"fileName": fileName, "fileHash": fileHash}

	var res AssetUpload
	path := fmt.Sprintf("/sites/%s/assets", url.PathEscape(siteID))
	if err := c.do(ctx, http.MethodPost, path, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UploadAsset: MD5 → create asset → POST multipart lên S3 uploadUrl
func (c *Client) UploadAsset(ctx context.Context, siteID, fileName string, data []byte) (*Asset, error) {
	// Step 1: MD5 hash
	sum := md5.Sum(data)
	hash := hex.EncodeToString(sum[:])

	// Step 2: Create asset
	created, err := c.CreateAsset(ctx, siteID, fileName, hash)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	if created.UploadURL == "" {
		return nil, fmt.Errorf("create asset: response has no uploadUrl")
	}

	// Step 3: Upload to S3
	if err := c.postToS3(ctx, created.UploadURL, created.UploadDetails, fileName, data); err != nil {
		return nil, err
	}

	hosted := created.HostedURL
	if hosted == "" {
		hosted = created.AssetURL
	}
	return &Asset{ID: created.ID, URL: hosted}, nil
}

func (c *Client) postToS3(ctx context.Context, uploadURL string, details map[string]string, fileName string, data []byte) error {
	body, contentType, err := buildS3Form(details, fileName, data)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("s3 upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Code: "s3_upload_failed", Message: string(raw)}
	}
	return nil
}

// buildS3Form ghi các field theo s3FieldOrder, field lạ (sorted) sau đó, file cuối cùng
func buildS3Form(details map[string]string, fileName string, data []byte) (*bytes.Buffer, string, error) {
	normalized := make(map[string]string, len(details))
	for k, v := range details {
		if alias, ok := s3FieldAliases[k]; ok {
			k = alias
		}
		normalized[k] = v
	}

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	written := make(map[string]bool, len(normalized))
	for _, name := range s3FieldOrder {
		if v, ok := normalized[name]; ok {
			if err := w.WriteField(name, v); err != nil {
				return nil, "", err
			}
			written[name] = true
		}
	}

	var extra []string
	for name := range normalized {
		if !written[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		if err := w.WriteField(name, normalized[name]); err != nil {
			return nil, "", err
		}
	}

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
