package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/cliptranslate/internal/application"
	"github.com/bnema/cliptranslate/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeControls struct {
	settings domain.SessionSettings
	copyErr  error
	copies   int
}

func (c *fakeControls) Settings() domain.SessionSettings {
	return c.settings
}

func (c *fakeControls) ToggleOverride(context.Context) bool {
	c.settings.OverrideEnabled = !c.settings.OverrideEnabled
	return c.settings.OverrideEnabled
}

func (c *fakeControls) SetSourceLanguage(_ context.Context, code string) error {
	c.settings.Pair.Source = code
	return nil
}

func (c *fakeControls) SetTargetLanguage(_ context.Context, code string) error {
	if code == "xx" {
		return domain.ErrUnsupportedLanguage
	}
	c.settings.Pair.Target = code
	return nil
}

func (c *fakeControls) CopyLastTranslation(context.Context) error {
	c.copies++
	return c.copyErr
}

func newTestModel(controls *fakeControls) Model {
	return NewModel(context.Background(), controls, Options{Languages: []domain.Language{
		{Code: "de", Name: "German"},
		{Code: "en", Name: "English"},
		{Code: "it", Name: "Italian"},
	}})
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()

	updated, cmd := m.Update(key)
	model, ok := updated.(Model)
	require.True(t, ok)
	require.NotNil(t, cmd)

	updated, _ = model.Update(cmd())
	model, ok = updated.(Model)
	require.True(t, ok)
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelToggleOverrideRefreshesSettings(t *testing.T) {
	controls := &fakeControls{settings: domain.SessionSettings{
		Pair:            domain.LanguagePair{Source: "en", Target: "it"},
		OverrideEnabled: true,
	}}

	m := press(t, newTestModel(controls), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.False(t, m.settings.OverrideEnabled)
	assert.Contains(t, m.View(), "[off]")
}

func TestModelCyclesLanguages(t *testing.T) {
	controls := &fakeControls{settings: domain.SessionSettings{
		Pair: domain.LanguagePair{Source: "en", Target: "it"},
	}}
	m := newTestModel(controls)

	m = press(t, m, runeKey(']'))
	assert.Equal(t, "it", m.settings.Pair.Source)

	m = press(t, m, runeKey(']'))
	assert.Equal(t, domain.AutoDetect, m.settings.Pair.Source)

	m = press(t, m, runeKey('['))
	assert.Equal(t, "it", m.settings.Pair.Source)

	m = press(t, m, runeKey('}'))
	assert.Equal(t, "de", m.settings.Pair.Target)

	m = press(t, m, runeKey('{'))
	assert.Equal(t, "it", m.settings.Pair.Target)
	assert.Contains(t, m.View(), "it → it")
}

func TestModelShowsControlErrors(t *testing.T) {
	controls := &fakeControls{copyErr: domain.ErrNothingTranslated}

	m := press(t, newTestModel(controls), runeKey('c'))

	assert.Equal(t, 1, controls.copies)
	assert.Equal(t, domain.StateError, m.status.State)
	assert.Contains(t, m.View(), "nothing translated yet")
}

func TestModelAppliesReporterMessages(t *testing.T) {
	m := newTestModel(&fakeControls{})

	updated, _ := m.Update(statusMsg{status: domain.TranslatingStatus()})
	m = updated.(Model)
	assert.Contains(t, m.View(), "translation in progress")

	updated, _ = m.Update(translationMsg{translation: domain.Translation{
		Original:   "hello",
		Translated: "ciao",
		Pair:       domain.LanguagePair{Source: "en", Target: "it"},
		At:         time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC),
	}})
	m = updated.(Model)
	updated, _ = m.Update(statusMsg{status: domain.ReadyStatus()})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "ciao")
	assert.Contains(t, view, "copied to clipboard")
}

func TestModelQuitKeys(t *testing.T) {
	m := newTestModel(&fakeControls{})

	for _, key := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModelIgnoresUnknownKeys(t *testing.T) {
	m := newTestModel(&fakeControls{})

	_, cmd := m.Update(runeKey('x'))
	assert.Nil(t, cmd)
}

func TestCycleLanguage(t *testing.T) {
	codes := []string{"de", "en", "it"}

	assert.Equal(t, "en", cycleLanguage(codes, "de", 1))
	assert.Equal(t, "de", cycleLanguage(codes, "it", 1))
	assert.Equal(t, "it", cycleLanguage(codes, "de", -1))
	assert.Equal(t, "de", cycleLanguage(codes, "fr", 1))
	assert.Equal(t, "fr", cycleLanguage(nil, "fr", 1))
}

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.msgs = append(s.msgs, msg)
}

func TestReporterForwardsOnlyOnceAttached(t *testing.T) {
	reporter := NewReporter()
	reporter.SetStatus(domain.IdleStatus("dropped"))

	sender := &recordingSender{}
	reporter.attach(sender)
	reporter.SetStatus(domain.ReadyStatus())
	reporter.ShowTranslation(domain.Translation{Original: "hello", Translated: "ciao"})

	require.Len(t, sender.msgs, 2)
	assert.Equal(t, statusMsg{status: domain.ReadyStatus()}, sender.msgs[0])
	assert.Equal(t, translationMsg{translation: domain.Translation{Original: "hello", Translated: "ciao"}}, sender.msgs[1])
}

func TestControlErrorMessageUsesErrorText(t *testing.T) {
	m := newTestModel(&fakeControls{})

	updated, _ := m.Update(controlErrMsg{err: errors.New("set target language: unsupported language")})

	assert.Equal(t, domain.SeverityError, updated.(Model).status.Severity)
}

func TestModelCyclesThroughTranslatorLanguagesAndStepsOverRejectedCodes(t *testing.T) {
	languages := []domain.Language{
		{Code: "en", Name: "English"},
		{Code: "ms", Name: "Malay"},
		{Code: "nb", Name: "Norwegian"},
		{Code: "nl", Name: "Dutch"},
		{Code: "zh-Hans", Name: "Chinese (Simplified)"},
	}
	monitor := application.NewMonitor(application.NewSettings(domain.SessionSettings{
		Pair:            domain.LanguagePair{Source: "en", Target: "ms"},
		OverrideEnabled: true,
	}), application.MonitorDeps{Clipboard: &fakeClipboard{}, Languages: languages})

	m := NewModel(context.Background(), monitor, Options{Languages: languages})

	var targets []string
	for i := 0; i < 4; i++ {
		m = press(t, m, runeKey('}'))
		targets = append(targets, monitor.Settings().Pair.Target)
	}

	assert.Equal(t, []string{"nb", "nl", "zh-Hans", "en"}, targets)
	assert.NotEqual(t, domain.StateError, m.status.State)
}

func TestModelStepsOverLanguageTheControlsReject(t *testing.T) {
	controls := &fakeControls{settings: domain.SessionSettings{
		Pair: domain.LanguagePair{Source: "en", Target: "ms"},
	}}
	m := NewModel(context.Background(), controls, Options{Languages: []domain.Language{
		{Code: "ms", Name: "Malay"},
		{Code: "xx", Name: "Rejected"},
		{Code: "nl", Name: "Dutch"},
	}})

	m = press(t, m, runeKey('}'))
	assert.Equal(t, domain.StateError, m.status.State)
	assert.Equal(t, "ms", controls.settings.Pair.Target)

	m = press(t, m, runeKey('}'))
	assert.Equal(t, "nl", controls.settings.Pair.Target)
	assert.Equal(t, "nl", m.settings.Pair.Target)
}

type fakeClipboard struct{}

func (fakeClipboard) ReadText(context.Context) (string, error) { return "", nil }

func (fakeClipboard) WriteText(context.Context, string) error { return nil }
