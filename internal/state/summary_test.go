package state

import (
	"testing"
)

func TestLoadSummary_NoFile(t *testing.T) {
	s, err := LoadSummary(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatal("expected nil summary when no run recorded")
	}
}

func TestSummary_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	orig := &Summary{
		RunID:     "run-1",
		Model:     "gpt-5.1",
		Completed: 3,
		Partial:   1,
		Jobs: []JobOutcome{
			{CustomID: "example::ode::simple-cases::0", Title: "Warm-up", Rounds: 1, Completed: true},
			{CustomID: "example::ode::simple-cases::1", Title: "Hard one", Rounds: 3, Reason: "markers_missing"},
		},
	}
	if err := orig.Save(dir); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSummary(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected summary")
	}
	if got.RunID != "run-1" || got.Completed != 3 || got.Partial != 1 {
		t.Fatalf("summary = %+v", got)
	}
	if len(got.Jobs) != 2 || got.Jobs[1].Reason != "markers_missing" {
		t.Fatalf("jobs = %+v", got.Jobs)
	}
}

func TestSummary_RoundTiming(t *testing.T) {
	s := &Summary{}
	s.StartRound(1, 10)
	s.EndRound(1, 4)
	s.StartRound(2, 4)
	s.EndRound(2, 0)

	if len(s.Rounds) != 2 {
		t.Fatalf("rounds = %d", len(s.Rounds))
	}
	if s.Rounds[0].Incomplete != 4 || s.Rounds[1].Incomplete != 0 {
		t.Fatalf("incomplete counts = %+v", s.Rounds)
	}
	if s.Rounds[0].End.IsZero() || s.Rounds[0].Duration == "" {
		t.Fatal("round 1 end not recorded")
	}
}

func TestWriteFileAtomic_NoTmpLeftover(t *testing.T) {
	dir := t.TempDir()
	s := &Summary{RunID: "x"}
	if err := s.Save(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSummary(dir); err != nil {
		t.Fatal(err)
	}
}
