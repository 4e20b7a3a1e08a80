// Package assemble turns finished generation jobs into the chapter
// .tex files of the book. Each chapter file carries the section
// narratives as LaTeX comments and the extracted inquiry/solution
// blocks of every generated example.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfaraday/bookforge/internal/blocks"
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/plan"
	"github.com/jfaraday/bookforge/internal/state"
	"github.com/jfaraday/bookforge/internal/ux"
)

// Key addresses one example's assembled output within the book.
type Key struct {
	Chapter string
	Section string
	Index   int
}

// Example is the assembled content of one generation job.
type Example struct {
	Title    string
	Inquiry  string
	Solution string
}

// Collect extracts the inquiry and solution blocks from every job that
// produced any text at all. When the solution block cannot be cut out
// cleanly the full accumulated text stands in for it, so partial
// output still lands in the chapter file rather than vanishing.
func Collect(jobs []*job.Job) map[Key]Example {
	out := make(map[Key]Example)
	for _, j := range jobs {
		text := strings.TrimSpace(j.Text)
		if text == "" {
			continue
		}
		solution := blocks.Extract(text, blocks.SolutionStart, blocks.SolutionEnd)
		if solution == "" {
			solution = text
		}
		out[Key{Chapter: j.Chapter, Section: j.Section, Index: j.Index}] = Example{
			Title:    j.Title,
			Inquiry:  blocks.Extract(text, blocks.InquiryStart, blocks.InquiryEnd),
			Solution: solution,
		}
	}
	return out
}

// Chapter renders one chapter file: the chapter heading, then per
// section the narrative as comment lines followed by the assembled
// examples. Sections or examples with nothing generated get a TODO
// comment so the gap is visible in the source.
func Chapter(ch config.Chapter, plans map[plan.Key]*plan.SectionPlan, examples map[Key]Example) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\chapter{%s}\n\n", ch.Title)

	for _, section := range ch.Sections {
		fmt.Fprintf(&b, "\\section{%s}\n", section)

		p := plans[plan.Key{Chapter: ch.Title, Section: section}]
		if p == nil {
			b.WriteString("% TODO: add a narrative plan for this section.\n\n")
			continue
		}

		if narrative := strings.TrimSpace(p.Narrative); narrative != "" {
			b.WriteString("% --- Narrative plan (auto-generated) ---\n")
			for _, line := range strings.Split(narrative, "\n") {
				if strings.TrimSpace(line) == "" {
					b.WriteString("%\n")
				} else {
					fmt.Fprintf(&b, "%% %s\n", line)
				}
			}
			b.WriteString("\n")
		}

		for i, ex := range p.Examples {
			rec, ok := examples[Key{Chapter: ch.Title, Section: section, Index: i}]
			if !ok {
				fmt.Fprintf(&b, "%% TODO: no generated content yet for example %d (%q).\n\n", i+1, ex.Title)
				continue
			}
			if inquiry := strings.TrimSpace(rec.Inquiry); inquiry != "" {
				fmt.Fprintf(&b, "%% ===== Example %d: %s (inquiry-based) =====\n", i+1, rec.Title)
				b.WriteString(inquiry + "\n\n")
			}
			fmt.Fprintf(&b, "%% ===== Example %d: %s (full solution) =====\n", i+1, rec.Title)
			b.WriteString(strings.TrimSpace(rec.Solution) + "\n\n")
		}
	}
	return b.String()
}

// Stub renders the no-content version of a chapter file, used before
// any generation has run.
func Stub(ch config.Chapter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\chapter{%s}\n\n", ch.Title)
	for _, section := range ch.Sections {
		fmt.Fprintf(&b, "\\section{%s}\n", section)
		b.WriteString("% TODO: run `bookforge generate` to fill in this section.\n\n")
	}
	return b.String()
}

// WriteBook writes every chapter file under dir, overwriting existing
// files so re-running generation always reflects the latest jobs.
func WriteBook(dir string, chapters []config.Chapter, plans map[plan.Key]*plan.SectionPlan, examples map[Key]Example) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating themes dir %s: %w", dir, err)
	}
	for _, ch := range chapters {
		path := filepath.Join(dir, ch.File)
		content := Chapter(ch, plans, examples)
		if err := state.WriteFileAtomic(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing chapter %s: %w", path, err)
		}
		ux.ChapterWritten(path)
	}
	return nil
}
