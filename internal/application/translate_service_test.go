package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTranslateServiceTranslateText(t *testing.T) {
	translator := mocks.NewMockTranslator(t)
	service := NewTranslateService(translator, &memoryClipboard{}, fixedClock{now: testNow})
	pair := domain.LanguagePair{Source: "en", Target: "it"}

	translator.EXPECT().Translate(mock.Anything, "hello", "en", "it").Return("ciao", nil).Once()

	got, err := service.TranslateText(context.Background(), "hello", pair)
	require.NoError(t, err)
	assert.Equal(t, domain.Translation{Original: "hello", Translated: "ciao", Pair: pair, At: testNow}, got)
}

func TestTranslateServiceRejectsBlankText(t *testing.T) {
	translator := mocks.NewMockTranslator(t)
	service := NewTranslateService(translator, &memoryClipboard{}, nil)

	_, err := service.TranslateText(context.Background(), " \n\t", domain.LanguagePair{Source: "en", Target: "it"})
	require.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestTranslateServiceTranslateClipboardAndCopy(t *testing.T) {
	translator := mocks.NewMockTranslator(t)
	clipboard := &memoryClipboard{text: "thank you"}
	service := NewTranslateService(translator, clipboard, fixedClock{now: testNow})
	pair := domain.LanguagePair{Source: "en", Target: "it"}

	translator.EXPECT().Translate(mock.Anything, "thank you", "en", "it").Return("grazie", nil).Once()

	got, err := service.TranslateClipboard(context.Background(), pair)
	require.NoError(t, err)
	assert.Equal(t, "grazie", got.Translated)
	assert.Equal(t, "thank you", clipboard.Text())

	require.NoError(t, service.CopyToClipboard(context.Background(), got))
	assert.Equal(t, "grazie", clipboard.Text())
}

func TestTranslateServiceWrapsErrors(t *testing.T) {
	translator := mocks.NewMockTranslator(t)
	clipboard := &memoryClipboard{readErr: errors.New("no display")}
	service := NewTranslateService(translator, clipboard, nil)

	_, err := service.TranslateClipboard(context.Background(), domain.LanguagePair{Source: "en", Target: "it"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read clipboard: no display")

	upstream := errors.New("503 service unavailable")
	translator.EXPECT().SupportedLanguages(mock.Anything).Return(nil, upstream).Once()

	_, err = service.Languages(context.Background())
	require.ErrorIs(t, err, upstream)
}

func TestTranslateServiceStampsTranslationWithClock(t *testing.T) {
	translator := mocks.NewMockTranslator(t)
	clock := mocks.NewMockClock(t)
	service := NewTranslateService(translator, &memoryClipboard{}, clock)

	translator.EXPECT().Translate(mock.Anything, "good night", "auto", "de").Return("gute Nacht", nil).Once()
	clock.EXPECT().Now().Return(testNow).Once()

	got, err := service.TranslateText(context.Background(), "good night", domain.LanguagePair{Source: "auto", Target: "de"})
	require.NoError(t, err)
	assert.Equal(t, testNow, got.At)
}

func TestTranslateServiceCopyToClipboardWrapsWriteError(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	service := NewTranslateService(mocks.NewMockTranslator(t), clipboard, nil)

	clipboard.EXPECT().WriteText(mock.Anything, "ciao").Return(errors.New("clipboard locked")).Once()

	err := service.CopyToClipboard(context.Background(), domain.Translation{Original: "hello", Translated: "ciao"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write clipboard: clipboard locked")
}
