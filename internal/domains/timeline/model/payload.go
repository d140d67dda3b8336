package model

import (
	"time"

	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/utils"
)

// BuildCreatePayload tạo fieldData cho event mới. photos[i] nil → bỏ field ảnh đó.
func BuildCreatePayload(req SubmitRequest, eventNumber int, editCode string, photos [PhotoSlots]*webflow.ImageRef, now time.Time) webflow.ItemPayload {
	title := req.Title()

	mainName := req.NameLine2
	if mainName == "" {
		mainName = title
	}
	postedBy := req.FullName

	data := webflow.FieldData{
		CMSName:          title,
		CMSSlug:          utils.UniqueSlug(title, FallbackSlugPrefix, now),
		CMSEventNumber:   eventNumber,
		CMSEvenNumber:    eventNumber%2 == 0,
		CMSDate:          utils.FormatISO(now),
		CMSDateAdded:     utils.ParseDateOrDefault(req.Date, func() time.Time { return now }),
		CMSEventName:     req.NameLine1,
		CMSEventNameMain: mainName,
		CMSDescription:   req.Detail,
		CMSEventType:     req.EventType,
		CMSLocation:      req.Location,
		CMSFullName:      postedBy,
		CMSEmail:         req.Email,
		CMSPostedBy:      postedBy,
		CMSOrigin:        OriginWebflow,
		CMSEditCode:      editCode,
		CMSPermalink:     "",
		CMSSynced:        false,
		CMSApproved:      true,
		CMSActive:        true,
	}

	for i, ref := range photos {
		if ref == nil {
			continue
		}
		photo := *ref
		if photo.Alt == "" {
			photo.Alt = defaultPhotoAlt(i)
		}
		data[CMSPhotoFields[i]] = photo
	}

	return webflow.ItemPayload{
		IsArchived: webflow.Bool(false),
		IsDraft:    webflow.Bool(false),
		FieldData:  data,
	}
}

// BuildAttachPayload map images.photo1/photo2 → photo-1/photo-2; ảnh không có URL bị bỏ qua
func BuildAttachPayload(images map[string]*ImageInput) webflow.ItemPayload {
	data := webflow.FieldData{}
	for i, uploadID := range SessionUploadIDs {
		img := images[uploadID]
		if img == nil || img.URL == "" {
			continue
		}
		data[CMSPhotoFields[i]] = webflow.ImageRef{URL: img.URL, Alt: img.Alt}
	}
	return webflow.ItemPayload{FieldData: data}
}

func defaultPhotoAlt(slot int) string {
	if slot == 0 {
		return "Timeline photo 1"
	}
	return "Timeline photo 2"
}
