package models

import "time"

// Upload represents an uploaded file tracked by the external upload store.
// Only the fields needed to resolve setting values to CDN URLs are modeled.
type Upload struct {
	ID uint64 `gorm:"primaryKey"`
	// URL is the canonical relative URL of the uploaded file.
	URL string `gorm:"size:512;not null;index"`
	// OriginalFilename is the name of the file as uploaded.
	OriginalFilename string `gorm:"size:255"`
	// SHA1 is the content digest used for deduplication by the upload store.
	SHA1 string `gorm:"size:40;index"`

	CreatedAt time.Time
}
