package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// RoundEntry records one submit/parse cycle of a run.
type RoundEntry struct {
	Round      int       `json:"round"`
	Submitted  int       `json:"submitted"`
	Incomplete int       `json:"incomplete"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end,omitempty"`
	Duration   string    `json:"duration,omitempty"`
}

// JobOutcome is the terminal state of one generation job.
type JobOutcome struct {
	CustomID  string `json:"custom_id"`
	Title     string `json:"title"`
	Rounds    int    `json:"rounds"`
	Completed bool   `json:"completed"`
	Reason    string `json:"reason,omitempty"`
}

// Summary is the persisted record of a generate run: which jobs
// completed, which were finalized partial, and how the rounds went.
type Summary struct {
	RunID      string       `json:"run_id"`
	Model      string       `json:"model"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at,omitempty"`
	Completed  int          `json:"completed"`
	Partial    int          `json:"partial"`
	Rounds     []RoundEntry `json:"rounds,omitempty"`
	Jobs       []JobOutcome `json:"jobs,omitempty"`
}

func summaryPath(dir string) string {
	return filepath.Join(dir, "summary.json")
}

// LoadSummary reads the last run summary from dir. Returns nil (no
// error) when no run has been recorded yet.
func LoadSummary(dir string) (*Summary, error) {
	data, err := os.ReadFile(summaryPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the summary to dir atomically.
func (s *Summary) Save(dir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(summaryPath(dir), data, 0644)
}

// StartRound appends a new round entry.
func (s *Summary) StartRound(round, submitted int) {
	s.Rounds = append(s.Rounds, RoundEntry{
		Round:     round,
		Submitted: submitted,
		Start:     time.Now(),
	})
}

// EndRound records the end of the most recent entry for round.
func (s *Summary) EndRound(round, incomplete int) {
	for i := len(s.Rounds) - 1; i >= 0; i-- {
		if s.Rounds[i].Round == round && s.Rounds[i].End.IsZero() {
			s.Rounds[i].End = time.Now()
			s.Rounds[i].Incomplete = incomplete
			s.Rounds[i].Duration = formatDuration(s.Rounds[i].End.Sub(s.Rounds[i].Start))
			break
		}
	}
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, sec)
}
