// Package form reads Webflow form posts (urlencoded or multipart) through
// per-form alias tables.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ErrFileTooLarge = errors.New("file too large")

// Values là form submission đã parse (field text + file)
type Values struct {
	fields url.Values
	files  map[string][]*multipart.FileHeader
}

func New(fields url.Values, files map[string][]*multipart.FileHeader) *Values {
	if fields == nil {
		fields = url.Values{}
	}
	return &Values{fields: fields, files: files}
}

// FromContext parse body theo Content-Type: multipart/form-data hoặc x-www-form-urlencoded.
// Multipart đi qua c.MultipartForm nên phần vượt engine.MaxMultipartMemory được ghi ra file tạm.
func FromContext(c *gin.Context) (*Values, error) {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		return New(mf.Value, mf.File), nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return New(c.Request.PostForm, nil), nil
}

// Get trả về giá trị đầu tiên (đã trim) của field
func (v *Values) Get(name string) string {
	return strings.TrimSpace(v.fields.Get(name))
}

// Keys trả về tên các field text + file, sorted (dùng để log)
func (v *Values) Keys() []string {
	keys := make([]string, 0, len(v.fields)+len(v.files))
	for k := range v.fields {
		keys = append(keys, k)
	}
	for k := range v.files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// File là file upload đã đọc vào memory
type File struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

func (f *File) Size() int64 {
	return int64(len(f.Data))
}

// File đọc file của field. Trả về nil, nil khi field không có file hoặc file rỗng.
// maxSize <= 0 nghĩa là không giới hạn.
func (v *Values) File(name string, maxSize int64) (*File, error) {
	headers := v.files[name]
	if len(headers) == 0 || headers[0].Size == 0 {
		return nil, nil
	}
	fh := headers[0]
	if maxSize > 0 && fh.Size > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFileTooLarge, fh.Filename, fh.Size, maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &File{
		FieldName:   name,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// ParseBool: "true", "yes", "1", "on" (không phân biệt hoa thường) → true
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}
