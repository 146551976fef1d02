package uploads

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	uploadctl "github.com/bananabr/discourse/internal/db/controller/upload"
	"github.com/bananabr/discourse/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Upload{}))

	return db
}

func TestCDNURL(t *testing.T) {
	db := setupTestDB(t)
	up := &models.Upload{URL: "/uploads/logo.png"}

	t.Run("with cdn base", func(t *testing.T) {
		r := NewResolver(db, "https://cdn.example.com")
		assert.Equal(t, "https://cdn.example.com/uploads/logo.png", r.CDNURL(up))
	})

	t.Run("trailing slash on base is trimmed", func(t *testing.T) {
		r := NewResolver(db, "https://cdn.example.com/")
		assert.Equal(t, "https://cdn.example.com/uploads/logo.png", r.CDNURL(up))
	})

	t.Run("without cdn base serves canonical url", func(t *testing.T) {
		r := NewResolver(db, "")
		assert.Equal(t, "/uploads/logo.png", r.CDNURL(up))
	})

	t.Run("nil upload", func(t *testing.T) {
		r := NewResolver(db, "https://cdn.example.com")
		assert.Equal(t, "", r.CDNURL(nil))
	})
}

func TestFindByURL(t *testing.T) {
	db := setupTestDB(t)

	up := &models.Upload{URL: "/uploads/logo.png"}
	require.NoError(t, db.Create(up).Error)

	r := NewResolver(db, "https://cdn.example.com")

	t.Run("accepts cdn form", func(t *testing.T) {
		found, err := r.FindByURL("https://cdn.example.com/uploads/logo.png")
		require.NoError(t, err)
		assert.Equal(t, up.ID, found.ID)
	})

	t.Run("accepts canonical form", func(t *testing.T) {
		found, err := r.FindByURL("/uploads/logo.png")
		require.NoError(t, err)
		assert.Equal(t, up.ID, found.ID)
	})

	t.Run("unknown url", func(t *testing.T) {
		_, err := r.FindByURL("/uploads/missing.png")
		require.ErrorIs(t, err, uploadctl.ErrUploadNotFound)
	})
}
