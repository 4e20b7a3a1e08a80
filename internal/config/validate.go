package config

import (
	"fmt"
	"strings"

	"github.com/jfaraday/bookforge/internal/slug"
)

// Defaults applied by Validate when fields are unset. The token
// ceilings are generous so a single round usually suffices; rounds are
// still capped because some solutions legitimately overflow even these.
const (
	DefaultModel         = "gpt-5.1"
	DefaultMaxRounds     = 3
	DefaultPlanTokens    = 4000
	DefaultExampleTokens = 8000
	DefaultPollSeconds   = 10
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Book == "" {
		return fmt.Errorf("config: 'book' is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.MaxRounds < 1 {
		return fmt.Errorf("config: max-rounds must be >= 1")
	}
	if cfg.PlanTokens == 0 {
		cfg.PlanTokens = DefaultPlanTokens
	}
	if cfg.PlanTokens < 0 {
		return fmt.Errorf("config: plan-tokens must be positive")
	}
	if cfg.ExampleTokens == 0 {
		cfg.ExampleTokens = DefaultExampleTokens
	}
	if cfg.ExampleTokens < 0 {
		return fmt.Errorf("config: example-tokens must be positive")
	}
	if cfg.PollSeconds == 0 {
		cfg.PollSeconds = DefaultPollSeconds
	}
	if cfg.PollSeconds < 1 {
		return fmt.Errorf("config: poll-seconds must be >= 1")
	}

	if len(cfg.Chapters) == 0 {
		return fmt.Errorf("config: at least one chapter is required")
	}

	seenTitle := make(map[string]bool)
	seenFile := make(map[string]bool)
	for i := range cfg.Chapters {
		ch := &cfg.Chapters[i]
		if ch.Title == "" {
			return fmt.Errorf("config: chapter %d: 'title' is required", i+1)
		}
		if seenTitle[ch.Title] {
			return fmt.Errorf("config: duplicate chapter title %q", ch.Title)
		}
		seenTitle[ch.Title] = true

		if ch.File == "" {
			ch.File = slug.Make(ch.Title) + ".tex"
		}
		if strings.ContainsAny(ch.File, "/\\") {
			return fmt.Errorf("config: chapter %q: file %q must not contain path separators", ch.Title, ch.File)
		}
		if !strings.HasSuffix(ch.File, ".tex") {
			return fmt.Errorf("config: chapter %q: file %q must end in .tex", ch.Title, ch.File)
		}
		if seenFile[ch.File] {
			return fmt.Errorf("config: duplicate chapter file %q", ch.File)
		}
		seenFile[ch.File] = true

		if len(ch.Sections) == 0 {
			return fmt.Errorf("config: chapter %q: at least one section is required", ch.Title)
		}
		seenSection := make(map[string]bool)
		for j, s := range ch.Sections {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("config: chapter %q: section %d is empty", ch.Title, j+1)
			}
			if seenSection[s] {
				return fmt.Errorf("config: chapter %q: duplicate section %q", ch.Title, s)
			}
			seenSection[s] = true
		}
	}

	return nil
}
