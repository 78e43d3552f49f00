package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
	"go.uber.org/zap"
)

var ErrCyclePanic = errors.New("translation cycle panicked")

type CycleOutcome string

const (
	CycleSkipped    CycleOutcome = "skipped"
	CycleTranslated CycleOutcome = "translated"
	CycleFailed     CycleOutcome = "failed"
	CycleCanceled   CycleOutcome = "canceled"
)

const (
	failureNotificationTitle = "cliptr"
	failureNotificationBody  = "translation failed"
)

// MonitorDeps are the collaborators of a Monitor. Notifier and Preferences
// are optional. Languages is the translator's own list; language changes are
// checked against it, or against the built-in registry when it is empty.
type MonitorDeps struct {
	Clipboard   ports.Clipboard
	Translator  ports.Translator
	Reporter    ports.StatusReporter
	Notifier    ports.Notifier
	Preferences ports.PreferencesRepository
	Clock       ports.Clock
	Logger      *zap.SugaredLogger
	Languages   []domain.Language
}

// Monitor polls the clipboard and replaces every new text it finds with its
// translation. Cycles run strictly one after another.
type Monitor struct {
	clipboard  ports.Clipboard
	translator ports.Translator
	reporter   ports.StatusReporter
	notifier   ports.Notifier
	prefs      ports.PreferencesRepository
	clock      ports.Clock
	logger     *zap.SugaredLogger
	settings   *Settings
	catalog    domain.LanguageCatalog

	mu           sync.Mutex
	lastObserved string
	last         domain.Translation
	state        domain.StatusState
}

func NewMonitor(settings *Settings, deps MonitorDeps) *Monitor {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop().Sugar()
	}
	if deps.Reporter == nil {
		deps.Reporter = discardReporter{}
	}

	return &Monitor{
		clipboard:  deps.Clipboard,
		translator: deps.Translator,
		reporter:   deps.Reporter,
		notifier:   deps.Notifier,
		prefs:      deps.Preferences,
		clock:      deps.Clock,
		logger:     deps.Logger,
		settings:   settings,
		catalog:    domain.NewLanguageCatalog(deps.Languages),
		state:      domain.StateIdle,
	}
}

// Run executes cycles until ctx is cancelled. A failing cycle never stops the
// loop; the returned error is always the context error.
func (m *Monitor) Run(ctx context.Context) error {
	initial := m.settings.Snapshot()
	m.logger.Infow("clipboard monitor started",
		"from", initial.Pair.Source,
		"to", initial.Pair.Target,
		"delay", initial.PollDelay.String(),
		"override", initial.OverrideEnabled,
	)
	m.setStatus(domain.IdleStatus(overrideMessage(initial.OverrideEnabled)))

	for {
		if err := waitDelay(ctx, m.settings.Snapshot().PollDelay); err != nil {
			m.logger.Infow("clipboard monitor stopped", "reason", err.Error())
			return err
		}

		outcome := m.RunCycle(ctx)
		if outcome != CycleSkipped {
			m.logger.Debugw("cycle finished", "outcome", string(outcome))
		}
	}
}

// RunCycle performs a single read, translate and write-back pass.
func (m *Monitor) RunCycle(ctx context.Context) (outcome CycleOutcome) {
	settings := m.settings.Snapshot()
	source := ""

	defer func() {
		if r := recover(); r != nil {
			outcome = m.fail(ctx, source, fmt.Errorf("%w: %v", ErrCyclePanic, r))
		}
	}()

	text, err := m.clipboard.ReadText(ctx)
	if err != nil {
		return m.fail(ctx, source, fmt.Errorf("read clipboard: %w", err))
	}
	if text == "" || text == m.LastObservedText() || !settings.OverrideEnabled {
		return CycleSkipped
	}
	source = text

	m.setStatus(domain.TranslatingStatus())
	m.logger.Debugw("translating clipboard text",
		"from", settings.Pair.Source,
		"to", settings.Pair.Target,
		"length", len(text),
	)

	translated, err := m.translator.Translate(ctx, text, settings.Pair.Source, settings.Pair.Target)
	if err != nil {
		return m.fail(ctx, source, fmt.Errorf("translate clipboard text: %w", err))
	}

	if err := m.clipboard.WriteText(ctx, translated); err != nil {
		return m.fail(ctx, source, fmt.Errorf("write clipboard: %w", err))
	}

	translation := domain.Translation{
		Original:   text,
		Translated: translated,
		Pair:       settings.Pair,
		At:         m.clock.Now(),
	}

	m.mu.Lock()
	m.lastObserved = translated
	m.last = translation
	m.mu.Unlock()

	m.showTranslation(translation)
	m.notify(ctx, text, translated)
	m.setStatus(domain.ReadyStatus())
	m.logger.Infow("clipboard translated",
		"from", settings.Pair.Source,
		"to", settings.Pair.Target,
		"length", len(text),
	)

	return CycleTranslated
}

func (m *Monitor) fail(ctx context.Context, source string, err error) CycleOutcome {
	if ctx.Err() != nil {
		m.logger.Debugw("cycle interrupted by shutdown", "error", err)
		return CycleCanceled
	}

	m.logger.Errorw("translation cycle failed", "error", err, "length", len(source))
	m.notify(ctx, failureNotificationTitle, failureNotificationBody)
	m.setStatus(domain.ErrorStatus(failureNotificationBody))

	return CycleFailed
}

func (m *Monitor) notify(ctx context.Context, title, body string) {
	if m.notifier == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Warnw("desktop notification panicked", "panic", fmt.Sprint(r))
		}
	}()

	if err := m.notifier.Notify(ctx, title, body); err != nil {
		m.logger.Warnw("desktop notification failed", "error", err)
	}
}

// setStatus and showTranslation keep a misbehaving reporter from turning a
// cycle whose clipboard write already happened into a failure.
func (m *Monitor) setStatus(status domain.Status) {
	m.mu.Lock()
	m.state = status.State
	m.mu.Unlock()

	defer m.recoverReporter("status")
	m.reporter.SetStatus(status)
}

func (m *Monitor) showTranslation(translation domain.Translation) {
	defer m.recoverReporter("translation")
	m.reporter.ShowTranslation(translation)
}

func (m *Monitor) recoverReporter(update string) {
	if r := recover(); r != nil {
		m.logger.Warnw("status reporter panicked", "update", update, "panic", fmt.Sprint(r))
	}
}

func (m *Monitor) State() domain.StatusState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Monitor) LastObservedText() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastObserved
}

func (m *Monitor) LastTranslation() domain.Translation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}

func (m *Monitor) Settings() domain.SessionSettings {
	return m.settings.Snapshot()
}

func waitDelay(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func overrideMessage(enabled bool) string {
	if enabled {
		return "clipboard translation enabled"
	}
	return "clipboard translation disabled"
}

type discardReporter struct{}

func (discardReporter) SetStatus(domain.Status) {}
func (discardReporter) ShowTranslation(domain.Translation) {}
