package models

import (
	"time"

	"gorm.io/datatypes"
)

// MovieFile is an attachment stored on disk under a per-filetype sub-bucket.
// Filetype is either "image" or "document". Metadata keeps the declared
// content type and byte size of the upload.
type MovieFile struct {
	ID         int64          `gorm:"primaryKey"`
	Filename   string         `gorm:"size:255;not null"`
	Filepath   string         `gorm:"size:512;not null"`
	Filetype   string         `gorm:"size:20;not null"`
	Source     string         `gorm:"size:255;not null"`
	MovieID    int64          `gorm:"index;not null"`
	UploadedBy int64          `gorm:"index"`
	Metadata   datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time

	Movie    *Movie `gorm:"foreignKey:MovieID"`
	Uploader *User  `gorm:"foreignKey:UploadedBy"`
}
