package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"webflow-forms-backend/internal/shared/form"
)

// PhotoInput là một slot ảnh: file upload trực tiếp, hoặc URL đã stage trên R2
type PhotoInput struct {
	File *form.File
	URL  string
	Alt  string
}

func (p PhotoInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.URL, is.URL),
	)
}

// SubmitRequest là một lần submit form timeline
type SubmitRequest struct {
	NameLine1 string
	NameLine2 string
	Name      string
	Date      string
	EventType string
	Detail    string
	Location  string
	FullName  string
	Email     string
	SessionID string
	Photos    [PhotoSlots]PhotoInput
}

// RequestFromForm đọc text field qua FormAliases và file fileToUpload1/2
func RequestFromForm(v *form.Values, maxFileSize int64) (SubmitRequest, error) {
	r := FormAliases.Resolve(v)

	req := SubmitRequest{
		NameLine1: r.Get(FieldNameLine1),
		NameLine2: r.Get(FieldNameLine2),
		Name:      r.Get(FieldName),
		Date:      r.Get(FieldDate),
		EventType: r.Get(FieldEventType),
		Detail:    r.Get(FieldDetail),
		Location:  r.Get(FieldLocation),
		FullName:  r.Get(FieldFullName),
		Email:     r.Get(FieldEmail),
		SessionID: r.Get(FieldSessionID),
	}
	req.Photos[0] = PhotoInput{URL: r.Get(FieldPhoto1URL), Alt: r.Get(FieldPhoto1Alt)}
	req.Photos[1] = PhotoInput{URL: r.Get(FieldPhoto2URL), Alt: r.Get(FieldPhoto2Alt)}

	for i, field := range FileFields {
		f, err := v.File(field, maxFileSize)
		if err != nil {
			return req, err
		}
		req.Photos[i].File = f
	}
	return req, nil
}

// Title: dòng 1 → dòng 2 → name → "Untitled Event"
func (r SubmitRequest) Title() string {
	for _, s := range []string{r.NameLine1, r.NameLine2, r.Name} {
		if s != "" {
			return s
		}
	}
	return UntitledEvent
}

// HasFiles: có file cần upload lên Webflow Assets
func (r SubmitRequest) HasFiles() bool {
	for _, p := range r.Photos {
		if p.File != nil {
			return true
		}
	}
	return false
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.EmailFormat.Error("please enter a valid email address")),
		validation.Field(&r.Photos),
	)
}

// SubmitResult trả về cho handler
type SubmitResult struct {
	ItemID         string `json:"itemId"`
	EventNumber    int    `json:"eventNumber"`
	PhotosAttached int    `json:"photosAttached"`
	Published      bool   `json:"published"`
}

// ImageInput là một ảnh trong body của attach-images
type ImageInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// AttachImagesRequest body của POST /api/timeline/attach-images
type AttachImagesRequest struct {
	ItemID string                 `json:"itemId"`
	Images map[string]*ImageInput `json:"images"`
}

func (r AttachImagesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemID, validation.Required.Error("missing itemId")),
	)
}

// AttachImagesResult: ImagesAttached rỗng khi không có gì để gắn
type AttachImagesResult struct {
	ItemID         string   `json:"itemId,omitempty"`
	ImagesAttached []string `json:"imagesAttached"`
	Message        string   `json:"message,omitempty"`
}

// StatusResponse cho GET /api/timeline/submit
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
