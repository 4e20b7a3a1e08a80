package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jfaraday/bookforge/internal/blocks"
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/job"
	"github.com/jfaraday/bookforge/internal/plan"
)

// textBody wraps a text fragment in the Responses API output shape.
func textBody(text string) map[string]any {
	return map[string]any{
		"output": []any{
			map[string]any{
				"type": "message",
				"content": []any{
					map[string]any{"type": "output_text", "text": text},
				},
			},
		},
	}
}

func fullExample(body string) string {
	return strings.Join([]string{
		blocks.InquiryStart,
		"inquiry for " + body,
		blocks.InquiryEnd,
		blocks.SolutionStart,
		"solution for " + body,
		blocks.SolutionEnd,
	}, "\n")
}

func TestApplyResultComplete(t *testing.T) {
	j := &job.Job{CustomID: "example::a::b::0", Status: job.StatusPending}
	ApplyResult(j, ResultLine{
		CustomID: j.CustomID,
		Response: &ResultResponse{StatusCode: 200, Body: textBody(fullExample("x"))},
	})

	if j.Status != job.StatusComplete {
		t.Fatalf("status = %q, want complete (reason %q)", j.Status, j.Reason)
	}
	if j.Reason != "" {
		t.Fatalf("reason = %q, want empty", j.Reason)
	}
	if !strings.Contains(j.Text, "solution for x") {
		t.Fatalf("text missing solution body:\n%s", j.Text)
	}
}

func TestApplyResultTruncated(t *testing.T) {
	// Inquiry closed, solution cut off before its end marker.
	truncated := strings.Join([]string{
		blocks.InquiryStart, "inquiry", blocks.InquiryEnd,
		blocks.SolutionStart, "half a solution",
	}, "\n")
	body := textBody(truncated)
	body["incomplete_details"] = map[string]any{"reason": "max_output_tokens"}

	j := &job.Job{CustomID: "example::a::b::0", Status: job.StatusPending}
	ApplyResult(j, ResultLine{CustomID: j.CustomID, Response: &ResultResponse{StatusCode: 200, Body: body}})

	if j.Status != job.StatusIncomplete {
		t.Fatalf("status = %q, want incomplete", j.Status)
	}
	if j.Reason != "max_output_tokens" {
		t.Fatalf("reason = %q, want max_output_tokens", j.Reason)
	}
	if j.Text != truncated {
		t.Fatalf("accumulated text altered:\n%s", j.Text)
	}
}

func TestApplyResultMarkersMissing(t *testing.T) {
	j := &job.Job{CustomID: "example::a::b::0", Status: job.StatusPending}
	ApplyResult(j, ResultLine{
		CustomID: j.CustomID,
		Response: &ResultResponse{StatusCode: 200, Body: textBody("prose with no markers at all")},
	})

	if j.Status != job.StatusIncomplete || j.Reason != job.ReasonMarkersMissing {
		t.Fatalf("status/reason = %q/%q, want incomplete/markers_missing", j.Status, j.Reason)
	}
}

func TestApplyResultNoResponse(t *testing.T) {
	j := &job.Job{CustomID: "example::a::b::0", Status: job.StatusPending, Text: "earlier round text"}
	ApplyResult(j, ResultLine{
		CustomID: j.CustomID,
		Error:    json.RawMessage(`{"code":"server_error"}`),
	})

	if j.Status != job.StatusIncomplete || j.Reason != job.ReasonNoResponse {
		t.Fatalf("status/reason = %q/%q, want incomplete/no_response", j.Status, j.Reason)
	}
	if j.Text != "earlier round text" {
		t.Fatalf("no_response must leave accumulated text untouched, got:\n%s", j.Text)
	}
}

func TestApplyResultAppendsAcrossRounds(t *testing.T) {
	j := &job.Job{CustomID: "example::a::b::0", Status: job.StatusIncomplete}
	first := strings.Join([]string{blocks.InquiryStart, "inquiry", blocks.InquiryEnd, blocks.SolutionStart, "part one"}, "\n")
	second := strings.Join([]string{"part two", blocks.SolutionEnd}, "\n")

	ApplyResult(j, ResultLine{Response: &ResultResponse{StatusCode: 200, Body: textBody(first)}})
	if j.Status != job.StatusIncomplete {
		t.Fatalf("after round 1: status = %q", j.Status)
	}
	ApplyResult(j, ResultLine{Response: &ResultResponse{StatusCode: 200, Body: textBody(second)}})

	if j.Status != job.StatusComplete {
		t.Fatalf("after round 2: status = %q, want complete", j.Status)
	}
	if got := blocks.Extract(j.Text, blocks.SolutionStart, blocks.SolutionEnd); got != "part one\npart two" {
		t.Fatalf("stitched solution = %q", got)
	}
}

func planReg(t *testing.T, n int) *job.Registry {
	t.Helper()
	examples := make([]plan.ExampleSpec, n)
	for i := range examples {
		examples[i] = plan.ExampleSpec{Title: fmt.Sprintf("Example %d", i+1), Summary: "summary"}
	}
	chapters := []config.Chapter{{Title: "Numbers", Sections: []string{"Primes"}}}
	plans := map[plan.Key]*plan.SectionPlan{
		{Chapter: "Numbers", Section: "Primes"}: {Narrative: "n", Examples: examples},
	}
	return job.NewRegistry(chapters, plans)
}

func writeResultLines(t *testing.T, path string, lines []ResultLine) {
	t.Helper()
	var sb strings.Builder
	for _, line := range lines {
		data, err := json.Marshal(line)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		sb.Write(data)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestParseResultsSkipsUnsubmittedAndCompleted(t *testing.T) {
	reg := planReg(t, 2)
	ids := reg.IDs()

	done := reg.Get(ids[0])
	done.Status = job.StatusComplete
	done.Text = fullExample("kept")

	path := filepath.Join(t.TempDir(), "results_round2.jsonl")
	writeResultLines(t, path, []ResultLine{
		// Stale line for the already-complete job: must not re-append.
		{CustomID: ids[0], Response: &ResultResponse{StatusCode: 200, Body: textBody("stale")}},
		{CustomID: ids[1], Response: &ResultResponse{StatusCode: 200, Body: textBody(fullExample("fresh"))}},
		{CustomID: "example::unknown::id::9", Response: &ResultResponse{StatusCode: 200, Body: textBody("ignored")}},
	})

	submitted := map[string]bool{ids[1]: true}
	if err := ParseResults(path, reg, submitted); err != nil {
		t.Fatalf("ParseResults: %v", err)
	}

	if done.Text != fullExample("kept") {
		t.Fatalf("completed job text corrupted:\n%s", done.Text)
	}
	if got := reg.Get(ids[1]); got.Status != job.StatusComplete {
		t.Fatalf("submitted job status = %q, want complete", got.Status)
	}
}

func TestParseResultsMalformedLineIsFatal(t *testing.T) {
	reg := planReg(t, 1)
	path := filepath.Join(t.TempDir(), "results_round1.jsonl")
	if err := os.WriteFile(path, []byte("{not json\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ParseResults(path, reg, map[string]bool{reg.IDs()[0]: true}); err == nil {
		t.Fatal("expected error for malformed result line")
	}
}
