// Package themesetting provides persistence operations for theme setting rows.
package themesetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/db/models"
)

const (
	keyQueryPattern = "theme_id = ? AND name = ? AND data_type = ?"
)

var (
	// ErrSettingNotFound is returned when no row matches the lookup key.
	ErrSettingNotFound = errors.New("theme setting not found")
	// ErrSettingNameEmpty is returned when attempting to create or look up a setting with an empty name.
	ErrSettingNameEmpty = errors.New("theme setting name cannot be empty")
	// ErrThemeNil is returned when the owning theme is nil.
	ErrThemeNil = errors.New("theme is nil")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Find retrieves the setting row identified by (theme, name, dataType).
func Find(db *gorm.DB, theme *models.Theme, name string, dataType int) (*models.ThemeSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if theme == nil {
		return nil, ErrThemeNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.ThemeSetting
	result := db.Where(keyQueryPattern, theme.ID, name, dataType).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// Create inserts a new setting row for (theme, name, dataType) with no value.
// Callers are expected to check for an existing row first; concurrent
// creation for the same key is not guarded here.
func Create(db *gorm.DB, theme *models.Theme, name string, dataType int) (*models.ThemeSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if theme == nil {
		return nil, ErrThemeNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	setting := &models.ThemeSetting{
		ThemeID:  theme.ID,
		Name:     name,
		DataType: dataType,
	}

	result := db.Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Save persists the current state of an existing setting row.
func Save(db *gorm.DB, setting *models.ThemeSetting) error {
	if db == nil {
		return ErrDBNil
	}
	if setting == nil {
		return ErrSettingNotFound
	}

	result := db.Save(setting)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// AllForTheme retrieves every setting row owned by the theme, for preloading
// into the in-memory lookup path.
func AllForTheme(db *gorm.DB, theme *models.Theme) ([]models.ThemeSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if theme == nil {
		return nil, ErrThemeNil
	}

	var settings []models.ThemeSetting
	result := db.Where("theme_id = ?", theme.ID).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}
