// Package batch implements the multi-round generation pipeline: it
// builds per-round request files, moves them through the external batch
// service, parses result lines into job state, and schedules
// continuation rounds for jobs whose output came back incomplete.
package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/prompt"
)

// Endpoint is the generation endpoint every request targets.
const Endpoint = "/v1/responses"

// Reasoning mirrors the optional reasoning tuning field of the request
// body.
type Reasoning struct {
	Effort string `json:"effort"`
}

// RequestBody is the generation call embedded in one batch line.
type RequestBody struct {
	Model           string     `json:"model"`
	Reasoning       *Reasoning `json:"reasoning,omitempty"`
	Input           string     `json:"input"`
	MaxOutputTokens int64      `json:"max_output_tokens"`
}

// RequestLine is one line of the requests JSONL file.
type RequestLine struct {
	CustomID string      `json:"custom_id"`
	Method   string      `json:"method"`
	URL      string      `json:"url"`
	Body     RequestBody `json:"body"`
}

// Builder constructs outbound request lines for jobs.
type Builder struct {
	Model           string
	MaxOutputTokens int64
}

// Build returns the request line for one job in the given round. Round
// 1 carries the full example prompt; later rounds carry a continuation
// prompt referencing the accumulated text. A job with no accumulated
// text (for example after a transport error) is re-asked from scratch
// even in a later round.
func (b *Builder) Build(j *job.Job, round int) RequestLine {
	var input string
	if round <= 1 || strings.TrimSpace(j.Text) == "" {
		input = prompt.Example(j.Chapter, j.Section, j.Title, j.Summary)
	} else {
		input = prompt.Continuation(j.Text)
	}
	return RequestLine{
		CustomID: j.CustomID,
		Method:   "POST",
		URL:      Endpoint,
		Body: RequestBody{
			Model:           b.Model,
			Reasoning:       &Reasoning{Effort: "medium"},
			Input:           input,
			MaxOutputTokens: b.MaxOutputTokens,
		},
	}
}

// WriteRequests writes one JSON line per request. The file is rebuilt
// from job state on every run so an interrupted round can be re-derived
// identically.
func WriteRequests(path string, lines []RequestLine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating requests file %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		data, err := json.Marshal(line)
		if err != nil {
			f.Close()
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
