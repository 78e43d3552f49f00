package status

import (
	"sync"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type sender interface {
	Send(msg tea.Msg)
}

// Reporter forwards monitor updates to a running bubbletea program. Updates
// sent before Attach are dropped.
type Reporter struct {
	mu      sync.RWMutex
	program sender
}

var _ ports.StatusReporter = (*Reporter)(nil)

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Attach(program *tea.Program) {
	r.attach(program)
}

func (r *Reporter) attach(program sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.program = program
}

func (r *Reporter) SetStatus(status domain.Status) {
	r.send(statusMsg{status: status})
}

func (r *Reporter) ShowTranslation(translation domain.Translation) {
	r.send(translationMsg{translation: translation})
}

func (r *Reporter) send(msg tea.Msg) {
	r.mu.RLock()
	program := r.program
	r.mu.RUnlock()

	if program == nil {
		return
	}
	program.Send(msg)
}

// LogReporter writes status updates to the log in headless mode.
type LogReporter struct {
	logger *zap.SugaredLogger
}

var _ ports.StatusReporter = (*LogReporter)(nil)

func NewLogReporter(logger *zap.SugaredLogger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) SetStatus(status domain.Status) {
	fields := []any{"state", status.State, "message", status.Message}
	if status.Severity == domain.SeverityError {
		r.logger.Warnw("status", fields...)
		return
	}
	r.logger.Infow("status", fields...)
}

func (r *LogReporter) ShowTranslation(translation domain.Translation) {
	r.logger.Infow("translation",
		"source", translation.Pair.Source,
		"target", translation.Pair.Target,
		"original", translation.Original,
		"translated", translation.Translated,
	)
}
