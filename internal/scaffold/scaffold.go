// Package scaffold creates the LaTeX book skeleton around the
// generation pipeline: main.tex, build tooling, directories, and stub
// chapter files. Every file is write-if-missing, so re-running init on
// an existing book never clobbers edited content.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfaraday/bookforge/internal/assemble"
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/ux"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "bookforge.yaml"

// EnsureConfig writes the starter configuration if none exists yet and
// reports whether it had to create one.
func EnsureConfig(dir string) (path string, created bool, err error) {
	path = filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", false, fmt.Errorf("writing %s: %w", ConfigFile, err)
	}
	return path, true, nil
}

// Init lays out the book skeleton for cfg under dir.
func Init(dir string, cfg *config.Config) error {
	for _, sub := range []string{"figures", "problems", "exams", "themes", "plans", "batch"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("creating %s/: %w", sub, err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, "main.tex"), mainTex(cfg)},
		{filepath.Join(dir, "Makefile"), makefileTemplate},
		{filepath.Join(dir, ".github", "workflows", "latex.yml"), workflowTemplate},
		{filepath.Join(dir, "exams", "exam1.tex"), examTemplate},
	}
	for _, ch := range cfg.Chapters {
		files = append(files, struct {
			path    string
			content string
		}{filepath.Join(dir, "themes", ch.File), assemble.Stub(ch)})
	}

	for _, f := range files {
		if err := writeIfMissing(f.path, f.content); err != nil {
			return err
		}
	}
	return nil
}

// mainTex renders the top-level document with one include per
// configured chapter.
func mainTex(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString(mainTexHeader)
	b.WriteString("\n\\title{" + cfg.Book + "}\n")
	b.WriteString("\\author{}\n\\date{\\today}\n\n")
	b.WriteString("\\begin{document}\n\n")
	b.WriteString("\\frontmatter\n\\maketitle\n\\tableofcontents\n\n")
	b.WriteString("\\chapter*{Preface}\n\\addcontentsline{toc}{chapter}{Preface}\n\n")
	b.WriteString("% TODO: describe the aim and structure of the book.\n\n")
	b.WriteString("\\mainmatter\n\n")
	for _, ch := range cfg.Chapters {
		fmt.Fprintf(&b, "\\include{themes/%s}\n", strings.TrimSuffix(ch.File, ".tex"))
	}
	b.WriteString(mainTexFooter)
	return b.String()
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		ux.ScaffoldSkipped(path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	ux.ScaffoldCreated(path)
	return nil
}
