package application

import (
	"context"
	"fmt"

	"github.com/bnema/cliptranslate/internal/domain"
)

// SetOverride enables or disables clipboard translation starting with the
// next cycle. An in-flight translation is not cancelled.
func (m *Monitor) SetOverride(ctx context.Context, enabled bool) {
	m.settings.SetOverride(enabled)
	m.setStatus(domain.IdleStatus(overrideMessage(enabled)))
	m.savePreferences(ctx)
}

func (m *Monitor) ToggleOverride(ctx context.Context) bool {
	enabled := m.settings.ToggleOverride()
	m.setStatus(domain.IdleStatus(overrideMessage(enabled)))
	m.savePreferences(ctx)

	return enabled
}

func (m *Monitor) SetSourceLanguage(ctx context.Context, code string) error {
	language, err := m.catalog.ResolveSource(code)
	if err != nil {
		return fmt.Errorf("set source language: %w", err)
	}

	m.settings.SetSourceLang(language.Code)
	m.setStatus(domain.IdleStatus(fmt.Sprintf("translating from %s", language.Code)))
	m.savePreferences(ctx)

	return nil
}

func (m *Monitor) SetTargetLanguage(ctx context.Context, code string) error {
	language, err := m.catalog.Resolve(code)
	if err != nil {
		return fmt.Errorf("set target language: %w", err)
	}

	m.settings.SetTargetLang(language.Code)
	m.setStatus(domain.IdleStatus(fmt.Sprintf("translating to %s", language.Code)))
	m.savePreferences(ctx)

	return nil
}

// CopyLastTranslation puts the most recent translation back on the clipboard.
func (m *Monitor) CopyLastTranslation(ctx context.Context) error {
	last := m.LastTranslation()
	if last.IsZero() {
		return domain.ErrNothingTranslated
	}

	if err := m.clipboard.WriteText(ctx, last.Translated); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	m.setStatus(domain.ReadyStatus())
	return nil
}

func (m *Monitor) savePreferences(ctx context.Context) {
	if m.prefs == nil {
		return
	}

	settings := m.settings.Snapshot()
	override := settings.OverrideEnabled
	prefs := domain.Preferences{
		SourceLang:      settings.Pair.Source,
		TargetLang:      settings.Pair.Target,
		OverrideEnabled: &override,
		UpdatedAt:       m.clock.Now(),
	}

	if err := m.prefs.Save(ctx, prefs); err != nil {
		m.logger.Warnw("failed to save preferences", "error", err)
	}
}
