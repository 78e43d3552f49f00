package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int               `toml:"version"`
	Preferences preferencesSchema `toml:"preferences"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type preferencesSchema struct {
	SourceLang      string `toml:"source_lang,omitempty"`
	TargetLang      string `toml:"target_lang,omitempty"`
	OverrideEnabled *bool  `toml:"override_enabled,omitempty"`
	UpdatedAt       string `toml:"updated_at,omitempty"`
}

func (s preferencesSchema) isEmpty() bool {
	return s.SourceLang == "" && s.TargetLang == "" && s.OverrideEnabled == nil
}
