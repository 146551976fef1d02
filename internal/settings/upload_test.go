package settings

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananabr/discourse/internal/db/models"
)

func TestUploadSetting(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	defaultUpload := &models.Upload{URL: "/uploads/logo.png", OriginalFilename: "logo.png"}
	require.NoError(t, db.Create(defaultUpload).Error)

	otherUpload := &models.Upload{URL: "/uploads/banner.png", OriginalFilename: "banner.png"}
	require.NoError(t, db.Create(otherUpload).Error)

	theme.Fields = []models.ThemeField{
		{
			ThemeID:  theme.ID,
			Name:     "logo",
			Type:     models.ThemeFieldUpload,
			UploadID: defaultUpload.ID,
		},
	}

	def := Definition{Name: "header_image", Type: TypeUpload, Default: "logo"}
	setting := New(def, theme, env)

	defaultURL := testCDNBase + "/uploads/logo.png"

	t.Run("default resolves sibling field to cdn url", func(t *testing.T) {
		assert.Equal(t, defaultURL, setting.Default())

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, defaultURL, v)
	})

	t.Run("setting the default url stores the underlying upload id", func(t *testing.T) {
		stored, err := setting.SetValue(defaultURL)
		require.NoError(t, err)
		assert.Equal(t, defaultURL, stored)

		rec := lookupRecord(theme, "header_image", TypeUpload)
		require.NotNil(t, rec)
		assert.Equal(t, strconv.FormatUint(defaultUpload.ID, 10), rec.Value)
	})

	t.Run("setting another known url stores its id", func(t *testing.T) {
		otherURL := testCDNBase + "/uploads/banner.png"

		stored, err := setting.SetValue(otherURL)
		require.NoError(t, err)
		assert.Equal(t, otherURL, stored)

		rec := lookupRecord(theme, "header_image", TypeUpload)
		require.NotNil(t, rec)
		assert.Equal(t, strconv.FormatUint(otherUpload.ID, 10), rec.Value)
	})

	t.Run("blank input clears the reference", func(t *testing.T) {
		stored, err := setting.SetValue("")
		require.NoError(t, err)
		assert.Equal(t, "", stored)

		rec := lookupRecord(theme, "header_image", TypeUpload)
		require.NotNil(t, rec)
		assert.Equal(t, "", rec.Value)

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("unknown url clears the reference", func(t *testing.T) {
		stored, err := setting.SetValue(testCDNBase + "/uploads/nope.png")
		require.NoError(t, err)
		assert.Equal(t, "", stored)
	})
}

func TestUploadSettingAbsentDefault(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	// no matching upload field on the theme
	def := Definition{Name: "header_image", Type: TypeUpload, Default: "missing"}
	setting := New(def, theme, env)

	assert.Equal(t, "", setting.Default())

	v, err := setting.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
