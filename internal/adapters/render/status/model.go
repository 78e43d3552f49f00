package status

import (
	"context"
	"strings"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controls is the set of runtime actions reachable from the keyboard.
type Controls interface {
	Settings() domain.SessionSettings
	ToggleOverride(ctx context.Context) bool
	SetSourceLanguage(ctx context.Context, code string) error
	SetTargetLanguage(ctx context.Context, code string) error
	CopyLastTranslation(ctx context.Context) error
}

type statusMsg struct {
	status domain.Status
}

type translationMsg struct {
	translation domain.Translation
}

type settingsMsg struct {
	settings domain.SessionSettings
}

type controlErrMsg struct {
	err error
}

type Options struct {
	// Languages offered when cycling source and target. Defaults to the
	// built-in registry.
	Languages []domain.Language
}

type Model struct {
	ctx       context.Context
	controls  Controls
	languages []domain.Language
	spinner   spinner.Model
	styles    styles
	settings  domain.SessionSettings
	status    domain.Status
	last      domain.Translation
	width     int

	// Last codes requested from the keyboard. Cycling continues from them so
	// a code the translator rejects is stepped over on the next press.
	sourceCursor string
	targetCursor string
}

func NewModel(ctx context.Context, controls Controls, opts Options) Model {
	languages := opts.Languages
	if len(languages) == 0 {
		languages = domain.SupportedLanguages()
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	settings := controls.Settings()

	return Model{
		ctx:          ctx,
		controls:     controls,
		languages:    languages,
		spinner:      s,
		styles:       newStyles(),
		settings:     settings,
		sourceCursor: settings.Pair.Source,
		targetCursor: settings.Pair.Target,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusMsg:
		m.status = msg.status
		return m, nil
	case translationMsg:
		m.last = msg.translation
		return m, nil
	case settingsMsg:
		m.settings = msg.settings
		return m, nil
	case controlErrMsg:
		m.status = domain.ErrorStatus(msg.err.Error())
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	return renderView(viewState{
		settings: m.settings,
		status:   m.status,
		last:     m.last,
		spinner:  m.spinner.View(),
		width:    m.width,
	}, m.styles)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "space":
		return m, m.control(func(ctx context.Context) error {
			m.controls.ToggleOverride(ctx)
			return nil
		})
	case "[", "]":
		code := cycleLanguage(m.sourceCodes(), m.sourceCursor, stepFor(msg.String(), "]"))
		m.sourceCursor = code
		return m, m.control(func(ctx context.Context) error {
			return m.controls.SetSourceLanguage(ctx, code)
		})
	case "{", "}":
		code := cycleLanguage(m.targetCodes(), m.targetCursor, stepFor(msg.String(), "}"))
		m.targetCursor = code
		return m, m.control(func(ctx context.Context) error {
			return m.controls.SetTargetLanguage(ctx, code)
		})
	case "c":
		return m, m.control(m.controls.CopyLastTranslation)
	default:
		return m, nil
	}
}

// control runs action off the update loop. Status changes made by the
// action arrive separately through the Reporter.
func (m Model) control(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	controls := m.controls
	return func() tea.Msg {
		if err := action(ctx); err != nil {
			return controlErrMsg{err: err}
		}
		return settingsMsg{settings: controls.Settings()}
	}
}

func (m Model) sourceCodes() []string {
	codes := make([]string, 0, len(m.languages)+1)
	codes = append(codes, domain.AutoDetect)
	return append(codes, m.targetCodes()...)
}

func (m Model) targetCodes() []string {
	codes := make([]string, 0, len(m.languages))
	for _, language := range m.languages {
		codes = append(codes, language.Code)
	}
	return codes
}

func stepFor(key, forward string) int {
	if key == forward {
		return 1
	}
	return -1
}

// cycleLanguage returns the code step positions away from current, wrapping
// at both ends. An unknown current code starts from the first entry.
func cycleLanguage(codes []string, current string, step int) string {
	if len(codes) == 0 {
		return current
	}

	index := -1
	for i, code := range codes {
		if strings.EqualFold(code, current) {
			index = i
			break
		}
	}
	if index < 0 {
		return codes[0]
	}

	next := (index + step) % len(codes)
	if next < 0 {
		next += len(codes)
	}
	return codes[next]
}
