package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/utils"
)

// SubmitRequest là một lần submit form memory journal
type SubmitRequest struct {
	FirstName    string
	LastName     string
	Detail       string
	Date         string
	Tags         [3]string
	Location     string
	Email        string
	Video        string
	ContentLink  string
	ProfileImage *form.File
	Photo        *form.File
}

// RequestFromForm đọc text field qua FormAliases, detail giữ nguyên xuống dòng
func RequestFromForm(v *form.Values, maxFileSize int64) (SubmitRequest, error) {
	r := FormAliases.Resolve(v)

	req := SubmitRequest{
		FirstName:   r.Get(FieldFirstName),
		LastName:    r.Get(FieldLastName),
		Detail:      r.Get(FieldDetail),
		Date:        r.Get(FieldDate),
		Tags:        [3]string{r.Get(FieldTag1), r.Get(FieldTag2), r.Get(FieldTag3)},
		Location:    r.Get(FieldLocation),
		Email:       r.Get(FieldEmail),
		Video:       r.Get(FieldVideo),
		ContentLink: r.Get(FieldContentLink),
	}

	var err error
	if req.ProfileImage, err = v.File(FileProfileImage, maxFileSize); err != nil {
		return req, err
	}
	if req.Photo, err = v.File(FilePhoto, maxFileSize); err != nil {
		return req, err
	}
	return req, nil
}

// Name: dòng đầu của detail (tối đa 50 ký tự) → "first last" → "Untitled Memory"
func (r SubmitRequest) Name() string {
	if name := utils.Truncate(utils.FirstLine(r.Detail), MaxNameLength); name != "" {
		return name
	}
	if full := strings.TrimSpace(r.FirstName + " " + r.LastName); full != "" {
		return full
	}
	return UntitledMemory
}

func (r SubmitRequest) HasFiles() bool {
	return r.ProfileImage != nil || r.Photo != nil
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.EmailFormat.Error("please enter a valid email address")),
		validation.Field(&r.Video, is.URL),
		validation.Field(&r.ContentLink, is.URL),
	)
}

// SubmitResult trả về cho handler
type SubmitResult struct {
	ItemID      string `json:"itemId"`
	MemoryID    int    `json:"memoryId"`
	Orientation string `json:"orientation"`
	PhotoAdded  bool   `json:"photoAdded"`
	Published   bool   `json:"published"`
}

// StatusResponse của GET debug endpoint
type StatusResponse struct {
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	Config    StatusConfig `json:"config"`
}

type StatusConfig struct {
	HasWriteToken   bool   `json:"hasWriteToken"`
	HasReadToken    bool   `json:"hasReadToken"`
	HasCollectionID bool   `json:"hasCollectionId"`
	HasSiteID       bool   `json:"hasSiteId"`
	CollectionID    string `json:"collectionId,omitempty"`
}
