package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Book: "Methods in Applied Mathematics",
		Chapters: []Chapter{
			{
				Title:    "Complex Analysis",
				Sections: []string{"Residue Calculus", "Analytic Functions"},
			},
			{
				Title:    "Fourier Analysis",
				File:     "fourier.tex",
				Sections: []string{"The Fourier Transform"},
			},
		},
	}
}

func TestValidate_SetsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("Model = %q", cfg.Model)
	}
	if cfg.MaxRounds != DefaultMaxRounds {
		t.Fatalf("MaxRounds = %d", cfg.MaxRounds)
	}
	if cfg.PlanTokens != DefaultPlanTokens || cfg.ExampleTokens != DefaultExampleTokens {
		t.Fatalf("token defaults not applied: %d %d", cfg.PlanTokens, cfg.ExampleTokens)
	}
	if cfg.PollSeconds != DefaultPollSeconds {
		t.Fatalf("PollSeconds = %d", cfg.PollSeconds)
	}
	if cfg.Chapters[0].File != "complex-analysis.tex" {
		t.Fatalf("default chapter file = %q", cfg.Chapters[0].File)
	}
}

func TestValidate_RequiresBook(t *testing.T) {
	cfg := validConfig()
	cfg.Book = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for missing book")
	}
}

func TestValidate_RequiresChapters(t *testing.T) {
	cfg := validConfig()
	cfg.Chapters = nil
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for no chapters")
	}
}

func TestValidate_DuplicateChapterTitle(t *testing.T) {
	cfg := validConfig()
	cfg.Chapters[1].Title = cfg.Chapters[0].Title
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate chapter title") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidate_DuplicateSection(t *testing.T) {
	cfg := validConfig()
	cfg.Chapters[0].Sections = []string{"Residue Calculus", "Residue Calculus"}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate section") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidate_BadMaxRounds(t *testing.T) {
	cfg := validConfig()
	cfg.MaxRounds = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for negative max-rounds")
	}
}

func TestValidate_FileWithSeparator(t *testing.T) {
	cfg := validConfig()
	cfg.Chapters[0].File = "themes/ca.tex"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for path separator in file")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookforge.yaml")
	content := `book: Methods in Applied Mathematics
model: gpt-5.1
max-rounds: 2
chapters:
  - title: Ordinary Differential Equations
    sections:
      - "ODEs: Simple Cases"
      - Sturm-Liouville (Spectral) Theory
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxRounds != 2 {
		t.Fatalf("MaxRounds = %d", cfg.MaxRounds)
	}
	if cfg.Chapters[0].File != "ordinary-differential-equations.tex" {
		t.Fatalf("File = %q", cfg.Chapters[0].File)
	}
	if cfg.SectionCount() != 2 {
		t.Fatalf("SectionCount = %d", cfg.SectionCount())
	}
	if cfg.ChapterIndex("Ordinary Differential Equations") != 0 {
		t.Fatal("ChapterIndex lookup failed")
	}
	if cfg.ChapterIndex("Missing") != -1 {
		t.Fatal("ChapterIndex should be -1 for unknown chapter")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
