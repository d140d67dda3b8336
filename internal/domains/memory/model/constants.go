package model

import "webflow-forms-backend/internal/shared/form"

// Logical form fields
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDetail      = "detail"
	FieldDate        = "date"
	FieldTag1        = "tag1"
	FieldTag2        = "tag2"
	FieldTag3        = "tag3"
	FieldLocation    = "location"
	FieldEmail       = "email"
	FieldVideo       = "video"
	FieldContentLink = "content_link"
)

var FormAliases = form.Aliases{
	FieldFirstName:   {"first_name"},
	FieldLastName:    {"last_name"},
	FieldDetail:      {"memory_detail", "memory"},
	FieldDate:        {"memory_date", "date"},
	FieldTag1:        {"memory_tag_1", "tag1"},
	FieldTag2:        {"memory_tag_2", "tag2"},
	FieldTag3:        {"memory_tag_3", "tag3"},
	FieldLocation:    {"memory_location", "location"},
	FieldEmail:       {"email"},
	FieldVideo:       {"video"},
	FieldContentLink: {"content_link"},
}

// File inputs
const (
	FileProfileImage = "profile_image"
	FilePhoto        = "photo"
)

// CMS field slugs of the memory journal collection
const (
	CMSName         = "name"
	CMSSlug         = "slug"
	CMSMemoryID     = "memory-id"
	CMSFirstName    = "first-name"
	CMSLastName     = "last-name"
	CMSEmail        = "email"
	CMSProfileImage = "profile-image"
	CMSDetail       = "memory-detail"
	CMSDate         = "memory-date"
	CMSLocation     = "memory-location"
	CMSTag1         = "memory-tag-1"
	CMSTag2         = "memory-tag-2"
	CMSTag3         = "memory-tag-3"
	CMSPhoto        = "photo"
	CMSPhotoAdded   = "photo-added"
	CMSVideo        = "video"
	CMSContentLink  = "content-link"
	CMSEditCode     = "edit-code"
	CMSActive       = "active"
)

const (
	UntitledMemory     = "Untitled Memory"
	FallbackSlugPrefix = "memory"
	MaxNameLength      = 50

	DefaultProfileAlt = "Profile image"
	DefaultPhotoAlt   = "Memory photo"
)
