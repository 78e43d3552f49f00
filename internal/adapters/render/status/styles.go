package status

import (
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title       lipgloss.Style
	direction   lipgloss.Style
	normal      lipgloss.Style
	success     lipgloss.Style
	failure     lipgloss.Style
	overrideOn  lipgloss.Style
	overrideOff lipgloss.Style
	section     lipgloss.Style
	label       lipgloss.Style
	original    lipgloss.Style
	translated  lipgloss.Style
	empty       lipgloss.Style
	help        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		direction:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		overrideOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		overrideOff: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:     lipgloss.NewStyle().MarginTop(1),
		label:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		original:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		translated:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		empty:       lipgloss.NewStyle().Faint(true),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) forSeverity(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeveritySuccess:
		return s.success
	case domain.SeverityError:
		return s.failure
	default:
		return s.normal
	}
}
