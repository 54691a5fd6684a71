// Package i18n is the localization lookup collaborator. The core never
// depends on display text, only on field values; everything user-visible in
// the UI goes through a Bundle.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const (
	// DefaultLanguage is the language used when none is configured.
	DefaultLanguage = "zh-CN"

	// fallbackLanguage fills in keys missing from the active catalog.
	fallbackLanguage = "en"
)

// Bundle resolves UI strings for one language.
type Bundle struct {
	language string
	catalog  map[string]string
	fallback map[string]string
}

// NewBundle loads the catalog for the given language (empty selects the
// default). Unknown languages are an error so a typo in configuration shows
// up at startup, not as a screen full of raw keys.
func NewBundle(language string) (*Bundle, error) {
	if language == "" {
		language = DefaultLanguage
	}

	fallback, err := loadCatalog(fallbackLanguage)
	if err != nil {
		return nil, err
	}
	catalog := fallback
	if language != fallbackLanguage {
		if catalog, err = loadCatalog(language); err != nil {
			return nil, fmt.Errorf("i18n: unknown language %q: %w", language, err)
		}
	}

	return &Bundle{language: language, catalog: catalog, fallback: fallback}, nil
}

// Language returns the active language tag.
func (b *Bundle) Language() string {
	return b.language
}

// T returns the localized string for key, substituting {param} placeholders
// from params. Keys missing from the active catalog fall back to English;
// keys missing everywhere come back verbatim so they are visible in the UI
// instead of silently blank.
func (b *Bundle) T(key string, params map[string]string) string {
	text, ok := b.catalog[key]
	if !ok {
		text, ok = b.fallback[key]
	}
	if !ok {
		return key
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func loadCatalog(language string) (map[string]string, error) {
	raw, err := localeFS.ReadFile("locales/" + language + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalog %s: %w", language, err)
	}
	catalog := make(map[string]string)
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("i18n: parse catalog %s: %w", language, err)
	}
	return catalog, nil
}
