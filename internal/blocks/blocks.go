package blocks

import "strings"

// Marker lines emitted by the model to delimit the two halves of an
// example: the inquiry-based worksheet and the full worked solution.
// Completion of a generation job is defined purely by their presence
// and order in the accumulated text.
const (
	InquiryStart  = "%%% INQUIRY START %%%"
	InquiryEnd    = "%%% INQUIRY END %%%"
	SolutionStart = "%%% SOLUTION START %%%"
	SolutionEnd   = "%%% SOLUTION END %%%"
)

// Complete reports whether text contains all four markers with each
// start marker preceding its matching end marker.
func Complete(text string) bool {
	return orderedPair(text, InquiryStart, InquiryEnd) &&
		orderedPair(text, SolutionStart, SolutionEnd)
}

func orderedPair(text, start, end string) bool {
	i := strings.Index(text, start)
	if i < 0 {
		return false
	}
	j := strings.Index(text[i+len(start):], end)
	return j >= 0
}

// Extract returns the substring of text strictly between start and end,
// trimmed of surrounding whitespace. Returns "" if either marker is
// missing or out of order.
func Extract(text, start, end string) string {
	i := strings.Index(text, start)
	if i < 0 {
		return ""
	}
	i += len(start)
	j := strings.Index(text[i:], end)
	if j < 0 {
		return ""
	}
	return strings.TrimSpace(text[i : i+j])
}
