package models

import "time"

// ThemeSetting represents a persisted setting value owned by a theme.
// A row exists only after the first successful write; reads fall back to the
// declared default when no row is present. The (theme, name, data type)
// triple identifies a row, and at most one row may exist per triple.
type ThemeSetting struct {
	ID uint64 `gorm:"primaryKey"`
	// ThemeID references the owning theme.
	ThemeID uint64 `gorm:"not null;uniqueIndex:idx_theme_setting_key"`
	// Name is the symbolic setting name as declared by the theme.
	Name string `gorm:"size:255;not null;uniqueIndex:idx_theme_setting_key"`
	// DataType is the numeric type code of the setting value.
	DataType int `gorm:"not null;uniqueIndex:idx_theme_setting_key"`
	// Value holds the stored scalar value in its string form.
	Value string `gorm:"type:text"`
	// JSONValue holds the stored structured value for objects settings.
	JSONValue []byte `gorm:"type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for ThemeSetting.
func (ThemeSetting) TableName() string {
	return "theme_settings"
}
