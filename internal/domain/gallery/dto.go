package gallery

import "time"

// Entry is the public projection of an approved upload. Original filename,
// message, size and moderation state stay private.
type Entry struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	Type         string    `json:"type"`
	UploaderName string    `json:"uploader_name"`
	UploadDate   time.Time `json:"upload_date"`
}
