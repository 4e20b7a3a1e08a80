package ux

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/plan"
	"github.com/jfaraday/bookforge/internal/state"
)

// RenderStatus prints plan-cache coverage, the per-round batch files on
// disk, and the last run summary if one exists.
func RenderStatus(cfg *config.Config, plansDir, batchDir string) {
	fmt.Printf("%sBook:%s   %s\n", Bold, Reset, cfg.Book)
	fmt.Printf("%sModel:%s  %s (max %d rounds)\n", Bold, Reset, cfg.Model, cfg.MaxRounds)

	cached, total := 0, 0
	fmt.Printf("\n%sPlans:%s\n", Bold, Reset)
	for _, ch := range cfg.Chapters {
		for _, section := range ch.Sections {
			total++
			key := plan.Key{Chapter: ch.Title, Section: section}
			marker := fmt.Sprintf("%s–%s", Dim, Reset)
			if _, err := os.Stat(filepath.Join(plansDir, key.Slug()+".json")); err == nil {
				cached++
				marker = fmt.Sprintf("%s✓%s", Green, Reset)
			}
			fmt.Printf("  %s %s / %s\n", marker, ch.Title, section)
		}
	}
	fmt.Printf("  %s%d/%d sections planned%s\n", Dim, cached, total, Reset)

	fmt.Printf("\n%sBatch files:%s\n", Bold, Reset)
	entries, err := os.ReadDir(batchDir)
	if err != nil || len(entries) == 0 {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
	} else {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Printf("  %s\n", filepath.Join(batchDir, n))
		}
	}

	summary, err := state.LoadSummary(batchDir)
	if err != nil || summary == nil {
		return
	}
	fmt.Printf("\n%sLast run:%s %s (model %s)\n", Bold, Reset, summary.RunID, summary.Model)
	fmt.Printf("  %d complete, %d partial\n", summary.Completed, summary.Partial)
	for _, r := range summary.Rounds {
		fmt.Printf("  round %d: %d submitted, %d still incomplete  %s%s%s\n",
			r.Round, r.Submitted, r.Incomplete, Dim, r.Duration, Reset)
	}
	for _, j := range summary.Jobs {
		if j.Completed {
			continue
		}
		fmt.Printf("  %s⚠%s %s (%s)\n", Yellow, Reset, j.CustomID, j.Reason)
	}
}
