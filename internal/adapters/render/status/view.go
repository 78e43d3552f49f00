package status

import (
	"fmt"
	"strings"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const helpText = "space toggle • [ ] source • { } target • c copy • q quit"

type viewState struct {
	settings domain.SessionSettings
	status   domain.Status
	last     domain.Translation
	spinner  string
	width    int
}

func renderView(v viewState, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.title.Render("cliptr"),
		"  ",
		s.direction.Render(v.settings.Pair.String()),
		"  ",
		overrideBadge(v.settings.OverrideEnabled, s),
	)

	lines := []string{
		header,
		statusLine(v.status, v.spinner, s),
		s.section.Render(renderTranslation(v.last, v.width, s)),
		s.section.Render(s.help.Render(helpText)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusLine(status domain.Status, spinner string, s styles) string {
	message := status.Message
	if message == "" {
		message = "waiting for clipboard changes"
	}

	line := s.forSeverity(status.Severity).Render(message)
	if status.State == domain.StateTranslating && spinner != "" {
		return spinner + " " + line
	}

	return line
}

func overrideBadge(enabled bool, s styles) string {
	if enabled {
		return s.overrideOn.Render("[on]")
	}
	return s.overrideOff.Render("[off]")
}

func renderTranslation(last domain.Translation, width int, s styles) string {
	if last.IsZero() {
		return s.empty.Render("No translation yet.")
	}

	original := s.original
	translated := s.translated
	if width > 0 {
		original = original.Width(width)
		translated = translated.Width(width)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.label.Render(fmt.Sprintf("%s:", languageLabel(last.Pair.Source))),
		original.Render(strings.TrimSpace(last.Original)),
		s.label.Render(fmt.Sprintf("%s:", languageLabel(last.Pair.Target))),
		translated.Render(strings.TrimSpace(last.Translated)),
	)
}

func languageLabel(code string) string {
	if code == "" {
		return "text"
	}
	if code == domain.AutoDetect {
		return "detected"
	}
	if language, err := domain.ResolveLanguage(code); err == nil {
		return language.Name
	}
	return code
}

// RenderTranslation draws a single translation the way the watch screen
// shows it, for one-shot output.
func RenderTranslation(translation domain.Translation) string {
	return renderTranslation(translation, 0, newStyles())
}
