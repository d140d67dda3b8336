package model

import (
	"time"

	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/shared/utils"
)

// Assets là kết quả upload; nil → không upload được / không có file
type Assets struct {
	ProfileImage *webflow.ImageRef
	Photo        *webflow.ImageRef
}

// BuildCreatePayload tạo fieldData cho memory mới, gồm cả các field card size theo orientation
func BuildCreatePayload(
	req SubmitRequest,
	memoryID int,
	editCode string,
	assets Assets,
	orientation storage.Orientation,
	cardOptions storage.CardSizeOptions,
	now time.Time,
) webflow.ItemPayload {
	name := req.Name()

	data := webflow.FieldData{
		CMSName:        name,
		CMSSlug:        utils.UniqueSlug(name, FallbackSlugPrefix, now),
		CMSMemoryID:    memoryID,
		CMSFirstName:   req.FirstName,
		CMSLastName:    req.LastName,
		CMSEmail:       req.Email,
		CMSDetail:      req.Detail,
		CMSDate:        utils.ParseDateOrDefault(req.Date, func() time.Time { return now }),
		CMSLocation:    req.Location,
		CMSTag1:        req.Tags[0],
		CMSTag2:        req.Tags[1],
		CMSTag3:        req.Tags[2],
		CMSPhotoAdded:  assets.Photo != nil,
		CMSVideo:       req.Video,
		CMSContentLink: req.ContentLink,
		CMSEditCode:    editCode,
		CMSActive:      true,
	}

	if ref := withAlt(assets.ProfileImage, DefaultProfileAlt); ref != nil {
		data[CMSProfileImage] = *ref
	}
	if ref := withAlt(assets.Photo, DefaultPhotoAlt); ref != nil {
		data[CMSPhoto] = *ref
	}

	for k, v := range storage.CardSizeFields(orientation, cardOptions) {
		data[k] = v
	}

	return webflow.ItemPayload{
		IsArchived: webflow.Bool(false),
		IsDraft:    webflow.Bool(false),
		FieldData:  data,
	}
}

func withAlt(ref *webflow.ImageRef, fallback string) *webflow.ImageRef {
	if ref == nil {
		return nil
	}
	out := *ref
	if out.Alt == "" {
		out.Alt = fallback
	}
	return &out
}
