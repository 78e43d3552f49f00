package application

import (
	"sync"
	"time"

	"github.com/bnema/cliptranslate/internal/domain"
)

// Settings holds the session configuration shared between the monitor loop
// and the user interface. The loop reads it once per cycle via Snapshot.
type Settings struct {
	mu      sync.RWMutex
	current domain.SessionSettings
}

func NewSettings(initial domain.SessionSettings) *Settings {
	if initial.PollDelay < 0 {
		initial.PollDelay = 0
	}

	return &Settings{current: initial}
}

func (s *Settings) Snapshot() domain.SessionSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *Settings) SetSourceLang(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Pair.Source = code
}

func (s *Settings) SetTargetLang(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Pair.Target = code
}

func (s *Settings) SetOverride(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.OverrideEnabled = enabled
}

// ToggleOverride flips the override flag and returns the new value.
func (s *Settings) ToggleOverride() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.OverrideEnabled = !s.current.OverrideEnabled
	return s.current.OverrideEnabled
}

func (s *Settings) SetPollDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.PollDelay = delay
}
