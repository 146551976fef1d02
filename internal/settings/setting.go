package settings

import (
	"math"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/db/controller/themesetting"
	"github.com/bananabr/discourse/internal/db/models"
	"github.com/bananabr/discourse/internal/i18n"
	"github.com/bananabr/discourse/internal/uploads"
)

// Env carries the external collaborators a setting needs to resolve and
// persist values.
type Env struct {
	DB         *gorm.DB
	Uploads    *uploads.Resolver
	Translator i18n.Translator
}

// Setting is a typed setting value bound to one theme. Instances are
// transient: construct one per access. Value re-resolves the backing record
// on every call; nothing is cached, so a read after a write within the same
// flow observes the written value.
type Setting interface {
	// Name returns the symbolic setting name.
	Name() string
	// Type returns the setting's type code.
	Type() Type
	// Default returns the declared default in its typed form.
	Default() any
	// Value returns the stored value cast to the typed representation, or
	// the default when no record exists.
	Value() (any, error)
	// SetValue validates v, lazily creates the backing record and persists
	// the cast value. It returns the value as actually stored, round-tripped
	// through storage rather than the input verbatim. Invalid candidates
	// fail with a *ValidationError.
	SetValue(v any) (any, error)
	// IsValid reports whether v would be accepted by SetValue.
	IsValid(v any) bool
	// HasRecord reports whether a persisted record backs this setting.
	HasRecord() bool
	// CreateRecord persists a new empty row for this setting. Callers check
	// HasRecord first; SetValue does this lazily on first write.
	CreateRecord() (*models.ThemeSetting, error)
	// Description returns the human-readable description from the options.
	Description() string
}

// ValidationError reports a rejected candidate value. Message is localized
// and includes bound information when min/max constraints are configured.
type ValidationError struct {
	Setting string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// New constructs the variant matching the definition's type code.
func New(def Definition, theme *models.Theme, env Env) Setting {
	b := base{def: def, theme: theme, env: env}

	switch def.Type {
	case TypeBool:
		return &boolSetting{base: b}
	case TypeInteger:
		return &integerSetting{base: b}
	case TypeFloat:
		return &floatSetting{base: b}
	case TypeString:
		return &stringSetting{base: b}
	case TypeEnum:
		return &enumSetting{base: b}
	case TypeList:
		return &listSetting{base: b}
	case TypeObjects:
		return &objectsSetting{base: b}
	case TypeUpload:
		return &uploadSetting{base: b}
	default:
		panic("unknown setting type code " + def.Type.String())
	}
}

// base holds the state shared by every variant and the raw read/write
// helpers the typed setters compose with.
type base struct {
	def   Definition
	theme *models.Theme
	env   Env
}

func (b *base) Name() string {
	return b.def.Name
}

func (b *base) Type() Type {
	return b.def.Type
}

func (b *base) Default() any {
	return b.def.Default
}

func (b *base) Description() string {
	return b.def.Options.Description()
}

// IsValid accepts anything; variants with constraints override it.
func (b *base) IsValid(_ any) bool {
	return true
}

// record scans the theme's preloaded settings for the row matching this
// setting's name and type. No store query is issued.
func (b *base) record() *models.ThemeSetting {
	return lookupRecord(b.theme, b.def.Name, b.def.Type)
}

// HasRecord reports whether a persisted row backs this setting.
func (b *base) HasRecord() bool {
	return b.record() != nil
}

// CreateRecord persists a new empty row for this setting and adds it to the
// theme's preloaded collection so subsequent lookups observe it. Callers
// check HasRecord first; concurrent creation is not guarded.
func (b *base) CreateRecord() (*models.ThemeSetting, error) {
	rec, err := themesetting.Create(b.env.DB, b.theme, b.def.Name, int(b.def.Type))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create record for setting %q", b.def.Name)
	}

	b.theme.Settings = append(b.theme.Settings, *rec)

	return &b.theme.Settings[len(b.theme.Settings)-1], nil
}

// ensureRecord returns the backing row, creating it on first write.
func (b *base) ensureRecord() (*models.ThemeSetting, error) {
	if rec := b.record(); rec != nil {
		return rec, nil
	}
	return b.CreateRecord()
}

// writeScalar stores a scalar value in its string form and returns the value
// as saved.
func (b *base) writeScalar(s string) (string, error) {
	rec, err := b.ensureRecord()
	if err != nil {
		return "", err
	}

	rec.Value = s
	if err := themesetting.Save(b.env.DB, rec); err != nil {
		return "", errors.Wrapf(err, "failed to save setting %q", b.def.Name)
	}

	return rec.Value, nil
}

// rawValue returns the stored scalar string and whether a record exists.
func (b *base) rawValue() (string, bool) {
	rec := b.record()
	if rec == nil {
		return "", false
	}
	return rec.Value, true
}

// invalidError builds the ValidationError for a rejected candidate. kind is
// "number" for the numeric variants and the type name otherwise. A secondary
// bound-interpolated message is appended only for finite bounds; an infinite
// min or max is treated as unbounded and omitted.
func (b *base) invalidError(kind string) *ValidationError {
	key := "themes.settings_errors." + kind + "_value_not_valid"
	msg := b.env.Translator.Translate(key, nil)

	minVal := b.def.Options.Min()
	maxVal := b.def.Options.Max()
	hasMin := !math.IsInf(minVal, -1)
	hasMax := !math.IsInf(maxVal, 1)

	switch {
	case hasMin && hasMax:
		msg += " " + b.env.Translator.Translate(key+"_min_max", map[string]any{
			"min": minVal,
			"max": maxVal,
		})
	case hasMin:
		msg += " " + b.env.Translator.Translate(key+"_min", map[string]any{
			"min": minVal,
		})
	case hasMax:
		msg += " " + b.env.Translator.Translate(key+"_max", map[string]any{
			"max": maxVal,
		})
	}

	return &ValidationError{Setting: b.def.Name, Message: msg}
}
