// Package plan loads or creates the per-section generation plans that
// seed the batch pipeline. Plans are cached as JSON under plans/ keyed
// by a slug of (chapter, section), so planning is idempotent across
// runs: a cached section never touches the generation service again.
package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jfaraday/bookforge/internal/llm"
	"github.com/jfaraday/bookforge/internal/prompt"
	"github.com/jfaraday/bookforge/internal/slug"
)

// ExampleSpec is one planned worked example within a section.
type ExampleSpec struct {
	Title              string   `json:"title"`
	Summary            string   `json:"summary"`
	Teaches            string   `json:"teaches,omitempty"`
	DifficultyVariants []string `json:"difficulty_variants,omitempty"`
}

// SectionPlan is the cached plan for one (chapter, section) pair.
// Immutable after creation within a run.
type SectionPlan struct {
	SectionTitle string        `json:"section_title,omitempty"`
	Narrative    string        `json:"narrative"`
	Examples     []ExampleSpec `json:"examples"`
}

// Key identifies a section across the whole book.
type Key struct {
	Chapter string
	Section string
}

func (k Key) Slug() string {
	return slug.Make(k.Chapter + "-" + k.Section)
}

// ParseError marks a malformed planning reply. The section is skipped
// for this run and nothing is cached, so a bad response never poisons
// the plan cache.
type ParseError struct {
	Key Key
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plan for %s/%s: %v", e.Key.Chapter, e.Key.Section, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Service resolves plans through the store first and the generation
// client second. A nil Client restricts the service to cached plans.
type Service struct {
	Store  Store
	Client llm.Client
	Tokens int64 // max output tokens for one planning call
}

// GetOrCreate returns the plan for a section, loading it from the cache
// when present and generating + persisting it otherwise.
func (s *Service) GetOrCreate(ctx context.Context, key Key) (*SectionPlan, error) {
	cacheKey := key.Slug()
	if s.Store.Exists(cacheKey) {
		return s.Store.Load(cacheKey)
	}

	if s.Client == nil {
		return nil, fmt.Errorf("no cached plan for %s/%s and no generation client", key.Chapter, key.Section)
	}

	text, err := s.Client.Generate(ctx, prompt.Plan(key.Chapter, key.Section), s.Tokens)
	if err != nil {
		return nil, fmt.Errorf("generating plan for %s/%s: %w", key.Chapter, key.Section, err)
	}

	p, err := Parse([]byte(text))
	if err != nil {
		return nil, &ParseError{Key: key, Err: err}
	}

	if err := s.Store.Save(cacheKey, p); err != nil {
		return nil, fmt.Errorf("caching plan %s: %w", cacheKey, err)
	}
	return p, nil
}

// Parse decodes and checks a planning reply. A usable plan needs a
// narrative and at least one example spec.
func Parse(data []byte) (*SectionPlan, error) {
	var p SectionPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Narrative == "" {
		return nil, fmt.Errorf("plan has no narrative")
	}
	if len(p.Examples) == 0 {
		return nil, fmt.Errorf("plan has no examples")
	}
	return &p, nil
}
