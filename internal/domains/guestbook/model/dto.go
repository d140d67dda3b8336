package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"webflow-forms-backend/internal/shared/form"
	"webflow-forms-backend/internal/shared/utils"
)

// SubmitRequest là một lần submit form guestbook.
// ItemID + EditCode có giá trị → sửa entry đã có, ngược lại tạo mới.
type SubmitRequest struct {
	CollectionID string
	ItemID       string
	EditCode     string
	Slug         string
	FullName     string
	Email        string
	Location     string
	FirstMet     string
	Relationship string
	Message      string
	CardColor    string
	DateAdded    string
	Active       *bool
	Archived     *bool
}

// RequestFromForm đọc submission qua FormAliases
func RequestFromForm(v *form.Values) SubmitRequest {
	r := FormAliases.Resolve(v)

	req := SubmitRequest{
		CollectionID: r.Get(FieldCollectionID),
		ItemID:       r.Get(FieldItemID),
		EditCode:     r.Get(FieldEditCode),
		Slug:         r.Get(FieldSlug),
		FullName:     r.Get(FieldFullName),
		Email:        r.Get(FieldEmail),
		Location:     r.Get(FieldLocation),
		FirstMet:     r.Get(FieldFirstMet),
		Relationship: r.Get(FieldRelationship),
		Message:      r.Get(FieldMessage),
		CardColor:    r.Get(FieldCardColor),
		DateAdded:    r.Get(FieldDateAdded),
	}
	if r.Has(FieldActive) {
		active := form.ParseBool(r.Get(FieldActive))
		req.Active = &active
	}
	if r.Has(FieldArchived) {
		archived := form.ParseBool(r.Get(FieldArchived))
		req.Archived = &archived
	}
	return req
}

// IsEdit: có itemId → sửa entry
func (r SubmitRequest) IsEdit() bool {
	return r.ItemID != ""
}

func (r SubmitRequest) Validate() error {
	if r.IsEdit() {
		return validation.ValidateStruct(&r,
			validation.Field(&r.EditCode, validation.Required.Error("edit code is required")),
			validation.Field(&r.Email, is.EmailFormat.Error("please enter a valid email address")),
			validation.Field(&r.DateAdded, validation.By(flexibleDate)),
		)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required.Error("full name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("please enter a valid email address"),
		),
		validation.Field(&r.DateAdded, validation.By(flexibleDate)),
	)
}

func flexibleDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := utils.ParseFlexibleDate(s); !ok {
		return errors.New("invalid date format")
	}
	return nil
}

// SubmitResult trả về cho handler để build redirect
type SubmitResult struct {
	ItemID      string `json:"itemId"`
	GuestbookID int    `json:"guestbookId"`
	EditCode    string `json:"editCode,omitempty"`
	Edited      bool   `json:"edited"`
	Published   bool   `json:"published"`
}

// CountResult là số entry đang live
type CountResult struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusResponse cho GET /api/guestbook/submit
type StatusResponse struct {
	Message         string `json:"message"`
	HasToken        bool   `json:"hasToken"`
	HasCollectionID bool   `json:"hasCollectionId"`
	CollectionID    string `json:"collectionId"`
	Timestamp       string `json:"timestamp"`
}
