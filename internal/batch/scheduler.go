package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/state"
	"github.com/jfaraday/bookforge/internal/ux"
)

// Scheduler drives the rounds. Round 1 submits every job; each later
// round submits only the still-incomplete frontier, until the frontier
// empties or the round budget is spent. Jobs left incomplete at the
// bound are finalized with whatever partial text accumulated — that is
// a warning, never a run failure.
type Scheduler struct {
	Registry  *job.Registry
	Builder   *Builder
	Transport Transport
	Dir       string // directory holding per-round request/result files
	MaxRounds int
}

// RoundPaths returns the request and result file paths for a round.
// Each round owns its pair exclusively; a result file present on disk
// is reused instead of resubmitting, which lets an interrupted run
// resume without re-spending quota.
func (s *Scheduler) RoundPaths(round int) (requests, results string) {
	requests = filepath.Join(s.Dir, fmt.Sprintf("requests_round%d.jsonl", round))
	results = filepath.Join(s.Dir, fmt.Sprintf("results_round%d.jsonl", round))
	return
}

// Run executes the round loop, recording per-round entries in summary.
func (s *Scheduler) Run(ctx context.Context, summary *state.Summary) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating batch dir %s: %w", s.Dir, err)
	}

	frontier := s.Registry.IDs()

	for round := 1; round <= s.MaxRounds; round++ {
		if len(frontier) == 0 {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ux.RoundHeader(round, s.MaxRounds, len(frontier))
		summary.StartRound(round, len(frontier))

		requestsPath, resultsPath := s.RoundPaths(round)
		if err := s.writeRound(frontier, round, requestsPath); err != nil {
			return err
		}

		if _, err := os.Stat(resultsPath); err == nil {
			ux.ReusingResults(round, resultsPath)
		} else {
			if s.Transport == nil {
				return fmt.Errorf("round %d: no results file at %s and no transport configured", round, resultsPath)
			}
			if err := s.Transport.Run(ctx, round, requestsPath, resultsPath); err != nil {
				return err
			}
		}

		submitted := make(map[string]bool, len(frontier))
		for _, id := range frontier {
			submitted[id] = true
		}
		if err := ParseResults(resultsPath, s.Registry, submitted); err != nil {
			return err
		}

		frontier = s.nextFrontier(frontier)
		summary.EndRound(round, len(frontier))
		if len(frontier) > 0 {
			ux.RoundIncomplete(round, len(frontier))
		}
	}

	return nil
}

// writeRound advances each submitted job's round number and writes the
// request file for this round.
func (s *Scheduler) writeRound(frontier []string, round int, path string) error {
	lines := make([]RequestLine, 0, len(frontier))
	for _, id := range frontier {
		j := s.Registry.Get(id)
		j.Round = round
		lines = append(lines, s.Builder.Build(j, round))
	}
	return WriteRequests(path, lines)
}

// nextFrontier keeps, in submission order, every job not yet complete.
// A submitted job with no result line at all is treated like an errored
// line: incomplete with reason no_response.
func (s *Scheduler) nextFrontier(frontier []string) []string {
	var next []string
	for _, id := range frontier {
		j := s.Registry.Get(id)
		if j.Status == job.StatusPending {
			j.Status = job.StatusIncomplete
			j.Reason = job.ReasonNoResponse
		}
		if j.Status != job.StatusComplete {
			next = append(next, id)
		}
	}
	return next
}
