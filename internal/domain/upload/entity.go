package upload

import "time"

// File type values derived from the original filename extension.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
	FileTypeOther = "other"
)

// Upload represents one guest-submitted media file and its moderation state.
// The binary content lives in the Store under Filename; the row carries only
// metadata. IsApproved starts false and is flipped by the admin module —
// there is no un-approve.
type Upload struct {
	ID               int64     `gorm:"column:id;primaryKey" json:"id"`
	UploaderName     string    `gorm:"column:uploader_name;not null" json:"uploader_name"`
	Filename         string    `gorm:"column:filename;uniqueIndex;not null" json:"filename"`
	OriginalFilename string    `gorm:"column:original_filename;not null" json:"original_filename"`
	FileType         string    `gorm:"column:file_type;not null" json:"file_type"`
	FileSize         int64     `gorm:"column:file_size;not null" json:"file_size"`
	Message          string    `gorm:"column:message" json:"message"`
	UploadDate       time.Time `gorm:"column:upload_date" json:"upload_date"`
	IsApproved       bool      `gorm:"column:is_approved;default:false" json:"is_approved"`
}

func (Upload) TableName() string { return "uploads" }
