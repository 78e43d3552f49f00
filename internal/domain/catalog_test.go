package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func libreLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "ms", Name: "Malay"},
		{Code: "nb", Name: "Norwegian"},
		{Code: "nl", Name: "Dutch"},
		{Code: "pt-BR", Name: "Portuguese (Brazil)"},
		{Code: "zh-Hans", Name: "Chinese (Simplified)"},
		{Code: "zh-Hant", Name: "Chinese (Traditional)"},
	}
}

func TestLanguageCatalogResolvesAgainstTranslatorList(t *testing.T) {
	catalog := NewLanguageCatalog(libreLanguages())

	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "code missing from the registry", code: "nb", want: "nb"},
		{name: "script subtag kept verbatim", code: "zh-Hans", want: "zh-Hans"},
		{name: "case and separator insensitive", code: "ZH_hant", want: "zh-Hant"},
		{name: "bare base picks first variant", code: "zh", want: "zh-Hans"},
		{name: "regional variant", code: "pt_br", want: "pt-BR"},
		{name: "unknown region falls back to base", code: "en-GB", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Resolve(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestLanguageCatalogRejectsCodesTheTranslatorLacks(t *testing.T) {
	catalog := NewLanguageCatalog(libreLanguages())

	for _, code := range []string{"it", "", "auto"} {
		_, err := catalog.Resolve(code)
		require.ErrorIs(t, err, ErrUnsupportedLanguage, code)
	}

	got, err := catalog.ResolveSource("auto")
	require.NoError(t, err)
	assert.Equal(t, AutoDetect, got.Code)
}

func TestLanguageCatalogAppliesRegistryAliases(t *testing.T) {
	catalog := NewLanguageCatalog([]Language{{Code: "iw", Name: "Hebrew"}, {Code: "en", Name: "English"}})

	got, err := catalog.Resolve("he")
	require.NoError(t, err)
	assert.Equal(t, "iw", got.Code)
}

func TestEmptyLanguageCatalogUsesRegistry(t *testing.T) {
	catalog := NewLanguageCatalog(nil)

	got, err := catalog.Resolve("zh")
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", got.Code)
	assert.Equal(t, SupportedLanguages(), catalog.Languages())

	_, err = catalog.Resolve("nb")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}
