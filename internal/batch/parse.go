package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jfaraday/bookforge/internal/blocks"
	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/outtext"
)

// ResultResponse is the response envelope of one result line. The body
// is kept as a decoded map because its shape varies; text extraction
// goes through outtext.
type ResultResponse struct {
	StatusCode int            `json:"status_code"`
	Body       map[string]any `json:"body"`
}

// ResultLine is one line of the results JSONL file.
type ResultLine struct {
	CustomID string          `json:"custom_id"`
	Response *ResultResponse `json:"response"`
	Error    json.RawMessage `json:"error"`
}

// ApplyResult folds one result line into a job: it appends whatever
// text the payload carried and recomputes the completion status from
// the full accumulated text. A line with no usable response leaves the
// text untouched and marks the job incomplete with reason no_response.
func ApplyResult(j *job.Job, line ResultLine) {
	if line.Response == nil || line.Response.Body == nil {
		j.Status = job.StatusIncomplete
		j.Reason = job.ReasonNoResponse
		return
	}

	if seg := outtext.FromBody(line.Response.Body); seg != "" {
		j.Append(seg)
	}

	if blocks.Complete(j.Text) {
		j.Status = job.StatusComplete
		j.Reason = ""
		return
	}

	j.Status = job.StatusIncomplete
	j.Reason = incompleteReason(line.Response.Body)
}

// incompleteReason prefers the service's own incomplete_details reason
// (typically max_output_tokens for mid-generation truncation) and falls
// back to markers_missing.
func incompleteReason(body map[string]any) string {
	if details, ok := body["incomplete_details"].(map[string]any); ok {
		if reason, ok := details["reason"].(string); ok && reason != "" {
			return reason
		}
	}
	return job.ReasonMarkersMissing
}

// Result lines carry full model output; allow generously sized lines.
const maxResultLine = 16 * 1024 * 1024

// ParseResults reads a round's results file and applies each line to
// its job. Only jobs in the submitted set are touched: stale lines for
// jobs completed in earlier rounds (or ids this run does not know)
// are skipped so accumulated text is never corrupted by re-parsing.
func ParseResults(path string, reg *job.Registry, submitted map[string]bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening results file %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxResultLine)

	for sc.Scan() {
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var line ResultLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return fmt.Errorf("malformed result line in %s: %w", path, err)
		}
		if line.CustomID == "" || !submitted[line.CustomID] {
			continue
		}
		j := reg.Get(line.CustomID)
		if j == nil || j.Status == job.StatusComplete {
			continue
		}
		ApplyResult(j, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading results file %s: %w", path, err)
	}
	return nil
}
