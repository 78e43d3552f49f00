package domain

import "errors"

var (
	ErrEmptyText           = errors.New("text is empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNothingTranslated   = errors.New("nothing translated yet")
	ErrPreferencesNotFound = errors.New("preferences not found")
)
