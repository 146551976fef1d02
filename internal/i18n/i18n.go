// Package i18n provides message localization for user-facing error text.
package i18n

import (
	_ "embed"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/en.toml
var enMessages []byte

// Translator resolves a message key and interpolation params to localized text.
type Translator interface {
	Translate(key string, params map[string]any) string
}

// Provider is a Translator backed by a go-i18n bundle.
type Provider struct {
	localizer *goi18n.Localizer
}

// NewProvider builds a Provider for the given language tags, falling back to
// English. The built-in English messages are always loaded.
func NewProvider(langs ...string) *Provider {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.MustParseMessageFileBytes(enMessages, "en.toml")

	langs = append(langs, language.English.String())

	return &Provider{
		localizer: goi18n.NewLocalizer(bundle, langs...),
	}
}

// Translate resolves key with the given params. Unknown keys resolve to the
// key itself so a missing translation never turns into an error.
func (p *Provider) Translate(key string, params map[string]any) string {
	msg, err := p.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})
	if err != nil || msg == "" {
		return key
	}

	return msg
}
