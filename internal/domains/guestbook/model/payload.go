package model

import (
	"time"

	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/utils"
)

// CardColorFields bật đúng switch của màu được chọn; màu lạ → tất cả false
func CardColorFields(selection string) map[string]bool {
	fields := make(map[string]bool, len(CardColorSwitches))
	for _, slug := range CardColorSwitches {
		fields[slug] = false
	}
	if slug, ok := cardColorMapping[selection]; ok {
		fields[slug] = true
	}
	return fields
}

// IsKnownCardColor reports whether selection is one of the form options
func IsKnownCardColor(selection string) bool {
	_, ok := cardColorMapping[selection]
	return ok
}

// BuildCreatePayload tạo fieldData cho entry mới
func BuildCreatePayload(req SubmitRequest, guestbookID int, editCode string, now time.Time) webflow.ItemPayload {
	// slug gửi kèm → slug từ tên → 10 ký tự ngẫu nhiên
	slug := utils.GenerateSlug(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.FullName)
	}
	if slug == "" {
		slug = utils.GenerateRandomSlug()
	}

	memoryDate := utils.FormatISO(now)
	if req.DateAdded != "" {
		memoryDate = utils.ParseDateOrDefault(req.DateAdded, func() time.Time { return now })
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	data := webflow.FieldData{
		CMSName:         req.FullName,
		CMSSlug:         slug,
		CMSGuestbookID:  guestbookID,
		CMSFirstName:    req.FullName,
		CMSEmail:        req.Email,
		CMSLocation:     req.Location,
		CMSMemory:       req.FirstMet,
		CMSRelationship: req.Relationship,
		CMSMessage:      req.Message,
		CMSMemoryDate:   memoryDate,
		CMSEditCode:     editCode,
		CMSActive:       active,
	}
	for field, on := range CardColorFields(req.CardColor) {
		data[field] = on
	}

	return webflow.ItemPayload{
		IsArchived: webflow.Bool(false),
		IsDraft:    webflow.Bool(false),
		FieldData:  data,
	}
}

// BuildUpdatePayload chỉ gửi các field có trong submission
func BuildUpdatePayload(req SubmitRequest, now time.Time) webflow.ItemPayload {
	data := webflow.FieldData{}

	if req.FullName != "" {
		data[CMSName] = req.FullName
		data[CMSFirstName] = req.FullName
	}
	set := func(slug, value string) {
		if value != "" {
			data[slug] = value
		}
	}
	set(CMSEmail, req.Email)
	set(CMSLocation, req.Location)
	set(CMSMemory, req.FirstMet)
	set(CMSRelationship, req.Relationship)
	set(CMSMessage, req.Message)

	if req.DateAdded != "" {
		data[CMSMemoryDate] = utils.ParseDateOrDefault(req.DateAdded, func() time.Time { return now })
	}
	if IsKnownCardColor(req.CardColor) {
		for field, on := range CardColorFields(req.CardColor) {
			data[field] = on
		}
	}
	if req.Active != nil {
		data[CMSActive] = *req.Active
	}

	return webflow.ItemPayload{
		IsArchived: req.Archived,
		FieldData:  data,
	}
}
