package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
)

// TranslateService serves one-shot translations outside the watch loop.
type TranslateService struct {
	translator ports.Translator
	clipboard  ports.Clipboard
	clock      ports.Clock
}

func NewTranslateService(translator ports.Translator, clipboard ports.Clipboard, clock ports.Clock) *TranslateService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &TranslateService{
		translator: translator,
		clipboard:  clipboard,
		clock:      clock,
	}
}

func (s *TranslateService) TranslateText(ctx context.Context, text string, pair domain.LanguagePair) (domain.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Translation{}, domain.ErrEmptyText
	}

	translated, err := s.translator.Translate(ctx, text, pair.Source, pair.Target)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("translate text: %w", err)
	}

	return domain.Translation{
		Original:   text,
		Translated: translated,
		Pair:       pair,
		At:         s.clock.Now(),
	}, nil
}

func (s *TranslateService) TranslateClipboard(ctx context.Context, pair domain.LanguagePair) (domain.Translation, error) {
	text, err := s.clipboard.ReadText(ctx)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("read clipboard: %w", err)
	}

	return s.TranslateText(ctx, text, pair)
}

func (s *TranslateService) CopyToClipboard(ctx context.Context, translation domain.Translation) error {
	if err := s.clipboard.WriteText(ctx, translation.Translated); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	return nil
}

func (s *TranslateService) Languages(ctx context.Context) ([]domain.Language, error) {
	languages, err := s.translator.SupportedLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supported languages: %w", err)
	}

	return languages, nil
}
