package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tomlrepo "github.com/bnema/cliptranslate/internal/adapters/repo/toml"
	"github.com/bnema/cliptranslate/internal/adapters/translator"
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix  = "CLIPTR"
	configName = "config"
	configType = "toml"
	configDir  = ".config/cliptr"

	flagFrom     = "from"
	flagTo       = "to"
	flagDelay    = "delay"
	flagConfig   = "config"
	flagLogLevel = "log-level"

	keyFrom          = "from"
	keyTo            = "to"
	keyDelay         = "delay"
	keyConfig        = "config"
	keyLogLevel      = "log.level"
	keyLogFile       = "log.file"
	keyProvider      = "translator.provider"
	keyBaseURL       = "translator.base_url"
	keyAPIKey        = "translator.api_key"
	keyProxy         = "translator.proxy"
	keyTimeout       = "translator.timeout"
	keyNotifications = "notifications"

	defaultLogLevel = "info"
)

var errInvalidDelay = errors.New("delay must not be negative")

func bindFlags(cfg *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		keyFrom:     flagFrom,
		keyTo:       flagTo,
		keyDelay:    flagDelay,
		keyConfig:   flagConfig,
		keyLogLevel: flagLogLevel,
	}
	for key, name := range bindings {
		// Lookup never fails for the flags registered on the root command.
		_ = cfg.BindPFlag(key, flags.Lookup(name))
	}
}

// loadConfig layers flags over CLIPTR_* environment variables over the
// config file over built-in defaults.
func loadConfig(cfg *viper.Viper) error {
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyDelay, int(domain.DefaultPollDelay.Milliseconds()))
	cfg.SetDefault(keyLogLevel, defaultLogLevel)
	cfg.SetDefault(keyProvider, translator.ProviderGoogle)
	cfg.SetDefault(keyTimeout, time.Duration(0))
	cfg.SetDefault(keyNotifications, true)

	if path := cfg.GetString(keyConfig); path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// resolveSettings builds the startup session. Languages fall back to the
// pair saved by the last watch session before the built-in defaults. A saved
// code the current translator no longer accepts is skipped.
func resolveSettings(ctx context.Context, cfg *viper.Viper, prefs ports.PreferencesRepository, catalog domain.LanguageCatalog, logger *zap.SugaredLogger) (domain.SessionSettings, error) {
	saved, err := prefs.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrPreferencesNotFound) {
			logger.Warnw("ignoring saved preferences", "error", err)
		}
		saved = domain.Preferences{}
	}

	source, err := resolveCode(catalog.ResolveSource, cfg.GetString(keyFrom), saved.SourceLang, domain.DefaultSourceLang, logger)
	if err != nil {
		return domain.SessionSettings{}, fmt.Errorf("resolve source language: %w", err)
	}

	target, err := resolveCode(catalog.Resolve, cfg.GetString(keyTo), saved.TargetLang, domain.DefaultTargetLang, logger)
	if err != nil {
		return domain.SessionSettings{}, fmt.Errorf("resolve target language: %w", err)
	}

	delay := cfg.GetInt(keyDelay)
	if delay < 0 {
		return domain.SessionSettings{}, fmt.Errorf("%w: %d", errInvalidDelay, delay)
	}

	return domain.SessionSettings{
		Pair:            domain.LanguagePair{Source: source, Target: target},
		PollDelay:       time.Duration(delay) * time.Millisecond,
		OverrideEnabled: true,
	}, nil
}

func resolveCode(resolve func(string) (domain.Language, error), configured, saved, fallback string, logger *zap.SugaredLogger) (string, error) {
	if strings.TrimSpace(configured) != "" {
		language, err := resolve(configured)
		if err != nil {
			return "", err
		}
		return language.Code, nil
	}

	if strings.TrimSpace(saved) != "" {
		language, err := resolve(saved)
		if err == nil {
			return language.Code, nil
		}
		logger.Warnw("ignoring saved language", "code", saved, "error", err)
	}

	language, err := resolve(fallback)
	if err != nil {
		return "", err
	}
	return language.Code, nil
}

func defaultLogPath() (string, error) {
	statePath, err := tomlrepo.DefaultStatePath()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(statePath), "cliptr.log"), nil
}
