package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/cliptranslate/internal/adapters/clipboard/system"
	"github.com/bnema/cliptranslate/internal/adapters/notify/desktop"
	tomlrepo "github.com/bnema/cliptranslate/internal/adapters/repo/toml"
	"github.com/bnema/cliptranslate/internal/adapters/translator"
	"github.com/bnema/cliptranslate/internal/adapters/translator/google"
	"github.com/bnema/cliptranslate/internal/adapters/translator/libre"
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errUnknownProvider = errors.New("unknown translator provider")

type app struct {
	cfg         *viper.Viper
	clipboard   ports.Clipboard
	newNotifier func() ports.Notifier

	// Set by wire once flags are parsed.
	logger     *zap.SugaredLogger
	translator ports.Translator
	languages  []domain.Language
	prefs      ports.PreferencesRepository
	settings   domain.SessionSettings
}

func newApp() *app {
	return &app{
		cfg:       viper.New(),
		clipboard: system.NewClipboard(),
		newNotifier: func() ports.Notifier {
			return desktop.NewNotifier("")
		},
	}
}

func (a *app) wire(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := loadConfig(a.cfg); err != nil {
		return err
	}

	logger, err := newLogger(a.cfg.GetString(keyLogLevel), a.cfg.GetString(keyLogFile))
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}
	a.logger = logger

	a.translator, err = newTranslator(a.cfg)
	if err != nil {
		return fmt.Errorf("wire translator: %w", err)
	}

	// Language codes are checked against the list of the configured
	// translator, so a LibreTranslate server is asked for its own codes.
	a.languages, err = a.translator.SupportedLanguages(ctx)
	if err != nil {
		return fmt.Errorf("wire translator languages: %w", err)
	}

	prefs, err := tomlrepo.NewPreferencesRepository(a.cfg)
	if err != nil {
		return fmt.Errorf("wire preferences repository: %w", err)
	}
	a.prefs = prefs

	a.settings, err = resolveSettings(ctx, a.cfg, a.prefs, domain.NewLanguageCatalog(a.languages), a.logger)
	if err != nil {
		return err
	}

	return nil
}

// screenLogger returns a logger that stays off the terminal while the
// status screen owns it.
func (a *app) screenLogger() (*zap.SugaredLogger, error) {
	path := a.cfg.GetString(keyLogFile)
	if path == "" {
		defaultPath, err := defaultLogPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return newLogger(a.cfg.GetString(keyLogLevel), path)
}

func (a *app) notifier(disabled bool) ports.Notifier {
	if disabled || !a.cfg.GetBool(keyNotifications) || a.newNotifier == nil {
		return nil
	}
	return a.newNotifier()
}

func newTranslator(cfg *viper.Viper) (ports.Translator, error) {
	httpClient, err := translator.NewHTTPClient(cfg.GetString(keyProxy), cfg.GetDuration(keyTimeout))
	if err != nil {
		return nil, err
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.GetString(keyProvider)))
	switch provider {
	case translator.ProviderGoogle, "":
		return google.NewClient(google.Options{
			BaseURL:    cfg.GetString(keyBaseURL),
			HTTPClient: httpClient,
		}), nil
	case translator.ProviderLibreTranslate:
		return libre.NewClient(libre.Options{
			BaseURL:    cfg.GetString(keyBaseURL),
			APIKey:     cfg.GetString(keyAPIKey),
			HTTPClient: httpClient,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownProvider, provider)
	}
}
