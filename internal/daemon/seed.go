package daemon

import (
	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/db/models"
)

// seed inserts a demo theme when the themes table is empty, so a dev
// environment has something to exercise the API against.
func seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Theme{}).Count(&count)
	if count != 0 {
		return
	}

	db.Create(
		&models.Theme{
			Name:    "Demo Theme",
			Enabled: true,
			SettingsSchema: []byte(`[
				{"name": "show_header", "type": "bool", "default": true},
				{"name": "max_posts", "type": "integer", "default": 10,
				 "options": {"min": 1, "max": 100}},
				{"name": "tagline", "type": "string", "default": "hello",
				 "options": {"max": 80}},
				{"name": "layout", "type": "enum", "default": "wide",
				 "options": {"choices": ["wide", "narrow", "boxed"]}}
			]`),
		},
	)
}
