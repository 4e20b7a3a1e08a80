// Package prompt builds the text sent to the generation service. The
// pipeline treats these as opaque strings; everything the model needs,
// including the marker protocol, is spelled out here.
package prompt

import (
	"fmt"
	"strings"

	"github.com/jfaraday/bookforge/internal/blocks"
)

// preferences is the style block shared by every prompt.
const preferences = `I appreciate inquiry-based learning with good guidance, good hints,
motivated examples, and starting with small cases to learn the techniques
that are commonly used. I like crafting a narrative so one can discover
these topics and form a thorough understanding.

For expository solutions, I want complete and thorough explanations written
for an undergraduate + beginning graduate audience. Use complete
mathematical sentences and avoid excessive use of symbols. Aim for a clear,
Chicago-style mathematical exposition.`

// Plan asks for a machine-readable section plan: a narrative plus 3-7
// example specs, as a bare JSON object.
func Plan(chapterTitle, sectionTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are helping design a section of a Methods in Applied Mathematics
textbook / problem notebook.

CHAPTER: %q
SECTION: %q

%s

Produce a JSON object ONLY, with no surrounding explanation or markdown.
The JSON MUST have the following structure:

{
  "section_title": <string>,
  "narrative": <string>,
  "examples": [
    {
      "title": <string>,
      "summary": <string>,
      "teaches": <string>,
      "difficulty_variants": [<string>, ...]
    },
    ...
  ]
}

Requirements:

- "narrative": 1-3 paragraphs (as a single string) describing what this
  section is about, why it matters for applied math / PDEs / dynamical
  systems, and how it connects to other topics.

- "examples": between 3 and 7 entries. For each example:
  * "title": a short descriptive title (e.g. "Damped harmonic oscillator").
  * "summary": 2-4 sentences in words about the scenario / model.
  * "teaches": 1-2 sentences about the main technique or concept.
  * "difficulty_variants": 2-4 labels like "easy", "medium", "hard", "extension".

Output ONLY valid JSON; do not include backticks, comments, or any extra text.
`, chapterTitle, sectionTitle, preferences)
	return b.String()
}

// Example asks for both versions of one worked example in a single
// reply, delimited by the four marker lines.
func Example(chapterTitle, sectionTitle, exampleTitle, exampleSummary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are helping write a Methods in Applied Mathematics textbook /
problem notebook.

CHAPTER: %q
SECTION: %q
EXAMPLE TITLE: %q

Informal description of the example:
%q

%s

Produce TWO pieces of LaTeX output, clearly separated by markers:

    %s
    ... inquiry-based LaTeX problem ...
    %s
    %s
    ... full problem + solution LaTeX ...
    %s

PART 1: Inquiry-based version (between INQUIRY markers)

- Output a single \begin{problem}[%s] ... \end{problem} environment.
- Start with 2-5 sentences of motivation inside the problem.
- Pose a sequence of guided questions (a), (b), (c), ... that nudge the
  student from an exploratory small case toward the full result.
- Include hints for delicate steps, either as comments "%% Hint: ..."
  or as "Hint: ..." after the question.
- DO NOT include a \begin{solution} here.

PART 2: Full solution version (between SOLUTION markers)

- Output exactly one \begin{problem}[%s] ... \end{problem} with a
  concise, exam-style statement of the same task, followed by one
  \begin{solution} ... \end{solution} with the complete exposition.
- Write the solution in complete sentences with a clear narrative
  thread, justify the key steps, point out the central ideas, and
  briefly mention how this example illustrates the section %q.

IMPORTANT:
- Do NOT wrap the output in \documentclass or \begin{document}.
- Do NOT include the markers themselves inside LaTeX comments.
- Output only plain text with the markers and LaTeX content.
`,
		chapterTitle, sectionTitle, exampleTitle, exampleSummary, preferences,
		blocks.InquiryStart, blocks.InquiryEnd, blocks.SolutionStart, blocks.SolutionEnd,
		exampleTitle, exampleTitle, sectionTitle)
	return b.String()
}

// Continuation asks the model to pick up a truncated answer exactly
// where it stopped. The entire accumulated text is included so the
// model can see what is already done; repeating it would corrupt the
// appended result.
func Continuation(accumulated string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You previously began generating a LaTeX problem with this marker protocol:

%s
(inquiry-based LaTeX problem & hints)
%s
%s
(full worked solution)
%s

The following is the content generated so far. It may already include the
entire INQUIRY block and the beginning of the SOLUTION block, but it was
cut off before the solution finished (or before the closing marker).

--- BEGIN EXISTING CONTENT ---
%s
--- END EXISTING CONTENT ---

Your task:
- Continue the LaTeX *from exactly where it was cut off*.
- Do NOT repeat any sentences already present.
- Do NOT regenerate the INQUIRY block if it is already present.
- Focus on FINISHING the solution so that the final combined text will
  contain the closing marker:

  %s

Output ONLY the new LaTeX content that should be appended after the
existing text, nothing else.
`,
		blocks.InquiryStart, blocks.InquiryEnd, blocks.SolutionStart, blocks.SolutionEnd,
		strings.TrimSpace(accumulated), blocks.SolutionEnd)
	return b.String()
}
