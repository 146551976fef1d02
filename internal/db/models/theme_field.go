package models

import "time"

// ThemeFieldType enumerates the kinds of fields a theme can declare.
type ThemeFieldType int

const (
	// ThemeFieldAsset is an inline asset (stylesheet, script, template).
	ThemeFieldAsset ThemeFieldType = iota
	// ThemeFieldUpload references an uploaded file by upload id.
	ThemeFieldUpload
)

// ThemeField represents a field declared by a theme author, such as an
// uploaded image referenced by name. Upload-typed settings resolve their
// default value through the sibling field carrying the same name.
type ThemeField struct {
	ID      uint64 `gorm:"primaryKey"`
	ThemeID uint64 `gorm:"not null;index"`
	Name    string `gorm:"size:255;not null"`
	Type    ThemeFieldType
	// UploadID references an Upload row when Type is ThemeFieldUpload.
	UploadID uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}
