package model

import "webflow-forms-backend/internal/shared/form"

// Logical form fields
const (
	FieldNameLine1 = "name_line_1"
	FieldNameLine2 = "name_line_2"
	FieldName      = "name"
	FieldDate      = "date"
	FieldEventType = "event_type"
	FieldDetail    = "detail"
	FieldLocation  = "location"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldPhoto1URL = "photo1_url"
	FieldPhoto1Alt = "photo1_alt"
	FieldPhoto2URL = "photo2_url"
	FieldPhoto2Alt = "photo2_alt"
	FieldSessionID = "session_id"
)

var FormAliases = form.Aliases{
	FieldNameLine1: {"timeline_name_line_1"},
	FieldNameLine2: {"timeline_name_line_2"},
	FieldName:      {"name"},
	FieldDate:      {"month-year", "timeline_date", "date-added"},
	FieldEventType: {"timeline_type", "event-type"},
	FieldDetail:    {"timeline_detail", "memory"},
	FieldLocation:  {"timeline_location", "location"},
	FieldFullName:  {"full_name", "name"},
	FieldEmail:     {"email"},
	FieldPhoto1URL: {"photo1_url", "fileToUpload1_url"},
	FieldPhoto1Alt: {"photo1_alt", "fileToUpload1_alt"},
	FieldPhoto2URL: {"photo2_url", "fileToUpload2_url"},
	FieldPhoto2Alt: {"photo2_alt", "fileToUpload2_alt"},
	FieldSessionID: {"session_id", "upload_session_id"},
}

// File inputs, theo thứ tự photo-1, photo-2
var FileFields = [PhotoSlots]string{"fileToUpload1", "fileToUpload2"}

// Upload IDs của ảnh trong upload session
var SessionUploadIDs = [PhotoSlots]string{"photo1", "photo2"}

const PhotoSlots = 2

// CMS field slugs of the timeline collection
const (
	CMSName          = "name"
	CMSSlug          = "slug"
	CMSEventNumber   = "event-number"
	CMSEvenNumber    = "even-number"
	CMSDate          = "date"
	CMSDateAdded     = "date-added"
	CMSEventName     = "event-name"
	CMSEventNameMain = "event-name-main"
	CMSDescription   = "description"
	CMSEventType     = "event-type"
	CMSLocation      = "timeline-location"
	CMSFullName      = "full-name"
	CMSEmail         = "email"
	CMSPostedBy      = "posted-by-user-name"
	CMSOrigin        = "origin"
	CMSEditCode      = "edit-code"
	CMSPermalink     = "permalink"
	CMSSynced        = "synced"
	CMSApproved      = "approved"
	CMSActive        = "active"
)

// CMSPhotoFields theo slot
var CMSPhotoFields = [PhotoSlots]string{"photo-1", "photo-2"}

const (
	UntitledEvent      = "Untitled Event"
	FallbackSlugPrefix = "timeline"
	OriginWebflow      = "webflow"
)
