package ports

import (
	"context"

	"github.com/bnema/cliptranslate/internal/domain"
)

type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	SupportedLanguages(ctx context.Context) ([]domain.Language, error)
}
