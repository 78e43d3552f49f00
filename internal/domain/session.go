package domain

import (
	"fmt"
	"time"
)

const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "it"
	DefaultPollDelay  = 200 * time.Millisecond
)

type LanguagePair struct {
	Source string
	Target string
}

func (p LanguagePair) String() string {
	return fmt.Sprintf("%s → %s", p.Source, p.Target)
}

// SessionSettings is the mutable part of a watch session. It is copied as a
// whole at the start of every cycle.
type SessionSettings struct {
	Pair            LanguagePair
	PollDelay       time.Duration
	OverrideEnabled bool
}

type Translation struct {
	Original   string
	Translated string
	Pair       LanguagePair
	At         time.Time
}

func (t Translation) IsZero() bool {
	return t.Original == "" && t.Translated == ""
}

type Preferences struct {
	SourceLang      string
	TargetLang      string
	OverrideEnabled *bool
	UpdatedAt       time.Time
}
