package settings

import "github.com/bananabr/discourse/internal/db/models"

// lookupRecord scans the theme's already-loaded setting rows for the row
// matching both name and type code. Type is part of the key: a row with the
// same name but a different type does not match. Returns the first match or
// nil. The caller is expected to have preloaded the theme's settings; no
// store query happens here.
func lookupRecord(theme *models.Theme, name string, typ Type) *models.ThemeSetting {
	if theme == nil {
		return nil
	}

	for i := range theme.Settings {
		rec := &theme.Settings[i]
		if rec.Name == name && rec.DataType == int(typ) {
			return rec
		}
	}

	return nil
}
