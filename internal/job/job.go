// Package job models one unit of generation work: a single worked
// example within a section. Jobs carry their accumulated text across
// continuation rounds and a completion status derived from the marker
// protocol.
package job

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jfaraday/bookforge/internal/slug"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
)

// Incompleteness reasons recorded alongside StatusIncomplete.
const (
	ReasonNoResponse     = "no_response"
	ReasonMarkersMissing = "markers_missing"
)

// Job is mutated only by the result parser (appending text, updating
// status) and the scheduler (advancing the round number). It is never
// re-keyed or deleted during a run.
type Job struct {
	CustomID string
	Chapter  string
	Section  string
	Index    int

	Title   string
	Summary string

	Round  int    // rounds submitted so far
	Text   string // accumulated text, strict append in round order
	Status Status
	Reason string // set when Status is StatusIncomplete
}

// Append adds a round's text segment to the accumulated text. Segments
// are joined with a newline; the result is trimmed at the edges but
// existing interior text is never rewritten.
func (j *Job) Append(segment string) {
	if j.Text == "" {
		j.Text = strings.TrimSpace(segment)
		return
	}
	j.Text = strings.TrimSpace(j.Text + "\n" + segment)
}

const idPrefix = "example"

// EncodeID builds the globally unique custom_id for an example. The id
// embeds the chapter slug, section slug, and example index so a result
// line can be matched back to its job without an auxiliary index.
func EncodeID(chapter, section string, index int) string {
	return fmt.Sprintf("%s::%s::%s::%d", idPrefix, slug.Make(chapter), slug.Make(section), index)
}

// ParseID splits a custom_id back into its components.
func ParseID(id string) (chapterSlug, sectionSlug string, index int, err error) {
	parts := strings.Split(id, "::")
	if len(parts) != 4 || parts[0] != idPrefix {
		return "", "", 0, fmt.Errorf("malformed custom_id %q", id)
	}
	index, err = strconv.Atoi(parts[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("malformed custom_id %q: %w", id, err)
	}
	return parts[1], parts[2], index, nil
}
