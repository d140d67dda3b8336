package model

import "webflow-forms-backend/internal/shared/form"

// Logical form fields
const (
	FieldCollectionID = "collection_id"
	FieldItemID       = "item_id"
	FieldEditCode     = "edit_code"
	FieldSlug         = "slug"
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldLocation     = "location"
	FieldFirstMet     = "first_met"
	FieldRelationship = "relationship"
	FieldMessage      = "message"
	FieldCardColor    = "card_color"
	FieldDateAdded    = "date_added"
	FieldActive       = "active"
	FieldArchived     = "archived"
)

// FormAliases: tên field của form Webflow theo thứ tự ưu tiên
var FormAliases = form.Aliases{
	FieldCollectionID: {"collectionId", "collection_id"},
	FieldItemID:       {"itemId", "item_id"},
	FieldEditCode:     {"edit_code", "editCode", "guestbook_edit_code"},
	FieldSlug:         {"slug"},
	FieldFullName:     {"full_name", "guestbook_name"},
	FieldEmail:        {"email", "email_address"},
	FieldLocation:     {"guestbook_location", "location"},
	FieldFirstMet:     {"guestbook_first_met", "guestbook_first_meeting"},
	FieldRelationship: {"Select-Field", "guestbook_relationship"},
	FieldMessage:      {"guestbook_message", "message"},
	FieldCardColor:    {"card_color", "color", "Card-Color"},
	FieldDateAdded:    {"date_added"},
	FieldActive:       {"active"},
	FieldArchived:     {"archived"},
}

// CMS field slugs of the guestbook collection
const (
	CMSName         = "name"
	CMSSlug         = "slug"
	CMSGuestbookID  = "guestbook-id"
	CMSFirstName    = "first-name"
	CMSEmail        = "email-address"
	CMSLocation     = "location"
	CMSMemory       = "memory"
	CMSRelationship = "guestbook-relationship"
	CMSMessage      = "guestbook-message"
	CMSMemoryDate   = "memory-date"
	CMSEditCode     = "edit-code-2"
	CMSActive       = "active"
)

// Card color switches
const (
	ColorSlateBlue     = "slate-blue-2"
	ColorOceanTeal     = "ocean-teal-2"
	ColorRustwoodRed   = "rustwood-red-2"
	ColorTwilightSmoke = "twilight-smoke-2"
	ColorWarmSandstone = "warm-sandstone"
)

// CardColorSwitches là tất cả switch field, đúng một cái true khi màu hợp lệ
var CardColorSwitches = []string{
	ColorSlateBlue,
	ColorOceanTeal,
	ColorRustwoodRed,
	ColorTwilightSmoke,
	ColorWarmSandstone,
}

// cardColorMapping: giá trị option trên form → switch field
var cardColorMapping = map[string]string{
	"Slate Blue":     ColorSlateBlue,
	"Ocean Teal":     ColorOceanTeal,
	"Rustwood Red":   ColorRustwoodRed,
	"Twilight Smoke": ColorTwilightSmoke,
	"Warm Sandstone": ColorWarmSandstone,
}
