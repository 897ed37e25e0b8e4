package types

import (
	"net/url"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContextProvider is the per-request localization and metadata surface
// handed to rendering code. An interface so downstream projects can wrap the
// default PageContext with tenant branding or feature flags without touching
// the scaffold packages.
type PageContextProvider interface {
	T(key string, args ...map[string]interface{}) string
	TSafe(key string, args ...map[string]interface{}) string
	GetURL() *url.URL
	GetLocale() language.Tag
}

type PageContext struct {
	URL       *url.URL
	Localizer *i18n.Localizer
	Locale    language.Tag
}

// T translates the message ID, panicking when the message cannot be resolved.
// Rendering code uses it for keys that are statically declared.
func (p *PageContext) T(key string, args ...map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		cfg.TemplateData = args[0]
	}
	msg, err := p.Localizer.Localize(cfg)
	if err != nil {
		panic(err)
	}
	return msg
}

// TSafe is T with a fallback to the key itself, for dynamic keys.
func (p *PageContext) TSafe(key string, args ...map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID: key,
		DefaultMessage: &i18n.Message{
			ID:    key,
			Other: key,
		},
	}
	if len(args) > 0 {
		cfg.TemplateData = args[0]
	}
	msg, err := p.Localizer.Localize(cfg)
	if err != nil {
		return key
	}
	return msg
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}
