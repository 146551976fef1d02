package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bananabr/discourse/internal/db/models"
)

func TestBoolSetting(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{Name: "show_header", Type: TypeBool, Default: true}
	setting := New(def, theme, env)

	t.Run("default without record", func(t *testing.T) {
		assert.False(t, setting.HasRecord())

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("write creates record and stringifies", func(t *testing.T) {
		stored, err := setting.SetValue("false")
		require.NoError(t, err)
		assert.Equal(t, false, stored)
		assert.True(t, setting.HasRecord())

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("string true casts to true", func(t *testing.T) {
		stored, err := setting.SetValue("true")
		require.NoError(t, err)
		assert.Equal(t, true, stored)
	})

	t.Run("anything else casts to false", func(t *testing.T) {
		stored, err := setting.SetValue(1)
		require.NoError(t, err)
		assert.Equal(t, false, stored)
	})
}

func TestIntegerSetting(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{
		Name:    "max_posts",
		Type:    TypeInteger,
		Default: 10,
		Options: Options{"min": 0, "max": 10},
	}
	setting := New(def, theme, env)

	t.Run("set then get returns the cast value", func(t *testing.T) {
		stored, err := setting.SetValue("7")
		require.NoError(t, err)
		assert.Equal(t, 7, stored)

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("boundary values are accepted", func(t *testing.T) {
		assert.True(t, setting.IsValid(0))
		assert.True(t, setting.IsValid(10))
	})

	t.Run("out of bounds rejected with validation error", func(t *testing.T) {
		_, err := setting.SetValue(11)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "max_posts", verr.Setting)

		assert.False(t, setting.IsValid(-1))
	})

	t.Run("unparsable input casts to zero", func(t *testing.T) {
		stored, err := setting.SetValue("lots")
		require.NoError(t, err)
		assert.Equal(t, 0, stored)
	})
}

func TestFloatSetting(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{
		Name:    "opacity",
		Type:    TypeFloat,
		Default: 1.0,
		Options: Options{"min": 0.0, "max": 1.0},
	}
	setting := New(def, theme, env)

	t.Run("set then get returns the cast value", func(t *testing.T) {
		stored, err := setting.SetValue("0.5")
		require.NoError(t, err)
		assert.Equal(t, 0.5, stored)

		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, 0.5, v)
	})

	t.Run("boundary values are accepted", func(t *testing.T) {
		assert.True(t, setting.IsValid(0.0))
		assert.True(t, setting.IsValid(1.0))
	})

	t.Run("out of bounds rejected", func(t *testing.T) {
		var verr *ValidationError

		_, err := setting.SetValue(1.5)
		require.ErrorAs(t, err, &verr)
	})
}

func TestStringSetting(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{
		Name:    "tagline",
		Type:    TypeString,
		Default: "hello",
		Options: Options{
			"min":         2,
			"max":         10,
			"textarea":    true,
			"json_schema": `{"type": "string"}`,
		},
	}
	setting := New(def, theme, env).(*stringSetting)

	t.Run("default without record", func(t *testing.T) {
		v, err := setting.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("stores verbatim", func(t *testing.T) {
		stored, err := setting.SetValue("short")
		require.NoError(t, err)
		assert.Equal(t, "short", stored)
	})

	t.Run("length bounds inclusive", func(t *testing.T) {
		assert.True(t, setting.IsValid("ab"))
		assert.True(t, setting.IsValid("aaaaaaaaaa"))
		assert.False(t, setting.IsValid("a"))
		assert.False(t, setting.IsValid("aaaaaaaaaaa"))
	})

	t.Run("exposes schema and textarea flag", func(t *testing.T) {
		assert.NotNil(t, setting.Schema())
		assert.True(t, setting.Textarea())
	})
}

func TestStringSettingMalformedSchemaIsNil(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{
		Name:    "tagline",
		Type:    TypeString,
		Options: Options{"json_schema": `{"type":`},
	}
	setting := New(def, theme, env).(*stringSetting)

	assert.Nil(t, setting.Schema())
}

// The factory builds transient instances; two instances for the same
// definition observe each other's writes through the theme's preloaded rows.
func TestSettingsAreNotCachedAcrossInstances(t *testing.T) {
	db := setupTestDB(t)
	theme := newTestTheme(t, db)
	env := newTestEnv(t, db)

	def := Definition{Name: "max_posts", Type: TypeInteger, Default: 1}

	first := New(def, theme, env)
	second := New(def, theme, env)

	_, err := first.SetValue(3)
	require.NoError(t, err)

	v, err := second.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = second.SetValue(4)
	require.NoError(t, err)

	v, err = first.Value()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	var count int64
	db.Model(&models.ThemeSetting{}).Count(&count)
	assert.Equal(t, int64(1), count, "updates must reuse the lazily created row")
}
