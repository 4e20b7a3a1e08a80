// Package slug makes filesystem- and identifier-friendly slugs.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases text and collapses every run of non-alphanumeric
// characters to a single hyphen. Returns "section" for inputs that slug
// to nothing so callers always get a usable key.
func Make(text string) string {
	s := strings.ToLower(text)
	s = nonAlnumRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "section"
	}
	return s
}
