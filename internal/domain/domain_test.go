package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "exact", code: "it", want: "it"},
		{name: "uppercase", code: "EN", want: "en"},
		{name: "regional variant falls back to base", code: "pt_BR", want: "pt"},
		{name: "chinese keeps region", code: "zh_tw", want: "zh-TW"},
		{name: "bare chinese", code: "zh", want: "zh-CN"},
		{name: "modern hebrew code", code: "he", want: "iw"},
		{name: "surrounding spaces", code: "  de ", want: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLanguage(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
			assert.NotEmpty(t, got.Name)
		})
	}
}

func TestResolveLanguageRejectsUnknownCode(t *testing.T) {
	_, err := ResolveLanguage("klingon")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = ResolveLanguage("")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestResolveSourceLanguageAcceptsAutoDetect(t *testing.T) {
	got, err := ResolveSourceLanguage("AUTO")
	require.NoError(t, err)
	assert.Equal(t, AutoDetect, got.Code)

	_, err = ResolveLanguage("auto")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestSupportedLanguagesAreSortedAndIncludeDefaults(t *testing.T) {
	languages := SupportedLanguages()
	require.NotEmpty(t, languages)

	codes := make([]string, 0, len(languages))
	for i, language := range languages {
		if i > 0 {
			assert.Less(t, languages[i-1].Code, language.Code)
		}
		codes = append(codes, language.Code)
	}
	assert.Contains(t, codes, DefaultSourceLang)
	assert.Contains(t, codes, DefaultTargetLang)
}

func TestCanonicalLanguageCode(t *testing.T) {
	assert.Equal(t, "pt-BR", CanonicalLanguageCode("PT_br"))
	assert.Equal(t, "", CanonicalLanguageCode("   "))
}

func TestErrorStatusDefaultsMessage(t *testing.T) {
	status := ErrorStatus("")
	assert.Equal(t, StateError, status.State)
	assert.Equal(t, SeverityError, status.Severity)
	assert.Equal(t, "translation failed", status.Message)
}

func TestLanguagePairString(t *testing.T) {
	assert.Equal(t, "en → it", LanguagePair{Source: "en", Target: "it"}.String())
}
