package ports

import "github.com/bnema/cliptranslate/internal/domain"

// StatusReporter is a display sink: only the most recent call is visible.
type StatusReporter interface {
	SetStatus(status domain.Status)
	ShowTranslation(translation domain.Translation)
}
