package status

import (
	"testing"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRenderViewIdle(t *testing.T) {
	output := renderView(viewState{
		settings: domain.SessionSettings{
			Pair:            domain.LanguagePair{Source: "en", Target: "it"},
			OverrideEnabled: true,
		},
		status: domain.IdleStatus("clipboard translation enabled"),
	}, newStyles())

	assert.Contains(t, output, "cliptr")
	assert.Contains(t, output, "en → it")
	assert.Contains(t, output, "[on]")
	assert.Contains(t, output, "clipboard translation enabled")
	assert.Contains(t, output, "No translation yet.")
	assert.Contains(t, output, "q quit")
}

func TestRenderViewShowsSpinnerOnlyWhileTranslating(t *testing.T) {
	base := viewState{spinner: "*"}

	base.status = domain.TranslatingStatus()
	assert.Contains(t, renderView(base, newStyles()), "* translation in progress")

	base.status = domain.ErrorStatus("")
	output := renderView(base, newStyles())
	assert.Contains(t, output, "translation failed")
	assert.NotContains(t, output, "* translation failed")
}

func TestRenderViewDefaultsEmptyStatus(t *testing.T) {
	output := renderView(viewState{}, newStyles())

	assert.Contains(t, output, "waiting for clipboard changes")
	assert.Contains(t, output, "[off]")
}

func TestRenderTranslation(t *testing.T) {
	output := RenderTranslation(domain.Translation{
		Original:   "good morning",
		Translated: "buongiorno",
		Pair:       domain.LanguagePair{Source: "en", Target: "it"},
	})

	assert.Contains(t, output, "English:")
	assert.Contains(t, output, "good morning")
	assert.Contains(t, output, "Italian:")
	assert.Contains(t, output, "buongiorno")
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "detected", languageLabel(domain.AutoDetect))
	assert.Equal(t, "Italian", languageLabel("it"))
	assert.Equal(t, "text", languageLabel(""))
	assert.Equal(t, "qq", languageLabel("qq"))
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reporter := NewLogReporter(zap.New(core).Sugar())

	reporter.SetStatus(domain.ReadyStatus())
	reporter.SetStatus(domain.ErrorStatus(""))
	reporter.ShowTranslation(domain.Translation{
		Original:   "hello",
		Translated: "ciao",
		Pair:       domain.LanguagePair{Source: "en", Target: "it"},
	})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "copied to clipboard", entries[0].ContextMap()["message"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "ciao", entries[2].ContextMap()["translated"])
}
