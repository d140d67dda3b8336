package model

// Form fields của POST /api/images/upload
const (
	FieldFile      = "file"
	FieldSessionID = "session_id"
	FieldUploadID  = "upload_id"
	FieldAlt       = "alt"
)

const (
	KeyPrefix        = "images/"
	DefaultExtension = "jpg"
	maxExtensionLen  = 5
)
