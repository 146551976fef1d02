// Package models contains database model definitions.
package models

import "time"

// Theme represents a theme installed on the site. A theme owns a set of
// persisted setting records and a set of theme fields (assets and uploads
// declared by the theme author).
type Theme struct {
	// ID is the unique identifier for the theme.
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name of the theme.
	Name string `gorm:"size:255;not null"`
	// Enabled indicates whether the theme is selectable by users.
	Enabled bool
	// SettingsSchema holds the theme's declared settings as JSON
	// (name, type, default and options per setting). It is input data;
	// this application never generates or migrates it.
	SettingsSchema []byte `gorm:"type:json"`
	// Settings are the persisted setting values owned by this theme.
	// Callers are expected to preload them; value resolution scans this
	// slice instead of querying per access.
	Settings []ThemeSetting `gorm:"foreignKey:ThemeID"`
	// Fields are the theme's declared fields, including upload references.
	Fields []ThemeField `gorm:"foreignKey:ThemeID"`
	// CreatedAt is the timestamp when the theme was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the theme was last updated (managed by GORM).
	UpdatedAt time.Time
}
