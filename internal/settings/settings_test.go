package settings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/db/models"
	"github.com/bananabr/discourse/internal/i18n"
	"github.com/bananabr/discourse/internal/uploads"
)

const testCDNBase = "https://cdn.example.com"

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Theme{},
		&models.ThemeSetting{},
		&models.ThemeField{},
		&models.Upload{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// newTestTheme persists a theme and returns it with empty preloaded
// collections, the state value resolution expects.
func newTestTheme(t *testing.T, db *gorm.DB) *models.Theme {
	t.Helper()

	theme := &models.Theme{Name: "test theme", Enabled: true}
	require.NoError(t, db.Create(theme).Error, "failed to create test theme")

	return theme
}

func newTestEnv(t *testing.T, db *gorm.DB) Env {
	t.Helper()

	return Env{
		DB:         db,
		Uploads:    uploads.NewResolver(db, testCDNBase),
		Translator: i18n.NewProvider(),
	}
}
