package domain

import (
	"fmt"
	"strings"
)

// LanguageCatalog resolves codes against the list a translator reports.
// Codes from the list are returned exactly as the translator spells them.
// An empty catalog falls back to the built-in registry.
type LanguageCatalog struct {
	languages []Language
}

func NewLanguageCatalog(languages []Language) LanguageCatalog {
	return LanguageCatalog{languages: append([]Language(nil), languages...)}
}

func (c LanguageCatalog) Languages() []Language {
	if len(c.languages) == 0 {
		return SupportedLanguages()
	}
	return append([]Language(nil), c.languages...)
}

func (c LanguageCatalog) Resolve(code string) (Language, error) {
	if len(c.languages) == 0 {
		return ResolveLanguage(code)
	}

	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	if language, ok := c.lookup(normalized); ok {
		return language, nil
	}

	// Registry aliases such as he → iw, as long as the translator knows the result.
	if alias, err := ResolveLanguage(normalized); err == nil {
		if language, ok := c.lookup(alias.Code); ok {
			return language, nil
		}
	}

	base := strings.SplitN(normalized, "-", 2)[0]
	for _, language := range c.languages {
		if strings.EqualFold(strings.SplitN(language.Code, "-", 2)[0], base) {
			return language, nil
		}
	}

	return Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

func (c LanguageCatalog) ResolveSource(code string) (Language, error) {
	if strings.EqualFold(strings.TrimSpace(code), AutoDetect) {
		return Language{Code: AutoDetect, Name: "Detect language"}, nil
	}
	return c.Resolve(code)
}

func (c LanguageCatalog) lookup(code string) (Language, bool) {
	for _, language := range c.languages {
		if strings.EqualFold(strings.ReplaceAll(language.Code, "_", "-"), code) {
			return language, true
		}
	}
	return Language{}, false
}
