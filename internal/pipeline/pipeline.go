// Package pipeline drives a full generation run: plan every section,
// push the example jobs through the multi-round batch scheduler, then
// assemble the chapter files and persist a run summary.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jfaraday/bookforge/internal/assemble"
	"github.com/jfaraday/bookforge/internal/batch"
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/llm"
	"github.com/jfaraday/bookforge/internal/plan"
	"github.com/jfaraday/bookforge/internal/state"
	"github.com/jfaraday/bookforge/internal/ux"
)

// Pipeline wires the phases together. A nil Client restricts planning
// to cached plans; a nil Transport restricts the batch phase to result
// files already on disk. Both are nil in offline runs and in tests.
type Pipeline struct {
	Config    *config.Config
	Root      string
	Client    llm.Client
	Transport batch.Transport
}

func (p *Pipeline) PlansDir() string  { return filepath.Join(p.Root, "plans") }
func (p *Pipeline) BatchDir() string  { return filepath.Join(p.Root, "batch") }
func (p *Pipeline) ThemesDir() string { return filepath.Join(p.Root, "themes") }

// Plans resolves the section plans for every configured section,
// cache-first. Sections that cannot be planned this run (malformed
// reply, or no cache and no client) are reported and left out; the
// rest of the pipeline simply never sees them.
func (p *Pipeline) Plans(ctx context.Context) (map[plan.Key]*plan.SectionPlan, error) {
	store, err := plan.NewFileStore(p.PlansDir())
	if err != nil {
		return nil, err
	}
	svc := &plan.Service{Store: store, Client: p.Client, Tokens: p.Config.PlanTokens}

	plans := make(map[plan.Key]*plan.SectionPlan)
	for _, ch := range p.Config.Chapters {
		for _, section := range ch.Sections {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			key := plan.Key{Chapter: ch.Title, Section: section}

			cached := store.Exists(key.Slug())
			switch {
			case cached:
				ux.PlanCached(ch.Title, section)
			case p.Client == nil:
				ux.PlanSkipped(ch.Title, section, errors.New("no cached plan and no generation client"))
				continue
			default:
				ux.PlanGenerating(ch.Title, section)
			}

			sp, err := svc.GetOrCreate(ctx, key)
			if err != nil {
				var pe *plan.ParseError
				if errors.As(err, &pe) {
					ux.PlanSkipped(ch.Title, section, pe.Err)
					continue
				}
				return nil, err
			}
			plans[key] = sp
		}
	}
	return plans, nil
}

// Run executes all three phases and returns the saved summary.
func (p *Pipeline) Run(ctx context.Context) (*state.Summary, error) {
	plans, err := p.Plans(ctx)
	if err != nil {
		return nil, err
	}

	reg := job.NewRegistry(p.Config.Chapters, plans)
	summary := &state.Summary{
		RunID:     uuid.NewString(),
		Model:     p.Config.Model,
		StartedAt: time.Now(),
	}

	if reg.Len() > 0 {
		scheduler := &batch.Scheduler{
			Registry:  reg,
			Builder:   &batch.Builder{Model: p.Config.Model, MaxOutputTokens: p.Config.ExampleTokens},
			Transport: p.Transport,
			Dir:       p.BatchDir(),
			MaxRounds: p.Config.MaxRounds,
		}
		if err := scheduler.Run(ctx, summary); err != nil {
			return nil, err
		}
	}

	p.finalize(reg, summary)

	if err := assemble.WriteBook(p.ThemesDir(), p.Config.Chapters, plans, assemble.Collect(reg.Jobs)); err != nil {
		return nil, err
	}

	summary.FinishedAt = time.Now()
	if err := summary.Save(p.BatchDir()); err != nil {
		return nil, fmt.Errorf("saving run summary: %w", err)
	}
	ux.RunDone(summary.Completed, summary.Partial)
	return summary, nil
}

// finalize tallies terminal job states. Jobs that ran out of rounds
// keep their accumulated text and are recorded as partial; that is a
// warning, never a failure.
func (p *Pipeline) finalize(reg *job.Registry, summary *state.Summary) {
	for _, j := range reg.Jobs {
		outcome := state.JobOutcome{
			CustomID:  j.CustomID,
			Title:     j.Title,
			Rounds:    j.Round,
			Completed: j.Status == job.StatusComplete,
			Reason:    j.Reason,
		}
		if outcome.Completed {
			summary.Completed++
		} else {
			summary.Partial++
			ux.JobPartial(j.CustomID, j.Reason, j.Round)
		}
		summary.Jobs = append(summary.Jobs, outcome)
	}
}
