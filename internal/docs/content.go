package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with bookforge",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "bookforge.yaml schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "markers",
		Title:   "The Marker Protocol",
		Summary: "How completion of a generated example is detected",
		Content: topicMarkers,
	},
	{
		Name:    "pipeline",
		Title:   "Generation Pipeline",
		Summary: "Planning, batch rounds, continuations, and assembly",
		Content: topicPipeline,
	},
	{
		Name:    "resume",
		Title:   "Caching and Resuming",
		Summary: "Plan cache, round files, and re-running safely",
		Content: topicResume,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a book:

    cd your-book
    bookforge init

   This creates bookforge.yaml, main.tex, a Makefile, and stub chapter
   files under themes/.

2. Edit bookforge.yaml: set the book title and lay out your chapters
   and sections.

3. Export an API key and generate:

    export OPENAI_API_KEY=sk-...
    bookforge generate

   Planning runs first (one call per section, cached under plans/),
   then the example batch rounds, then chapter assembly into themes/.

4. Build the PDF:

    make pdf

Run 'bookforge status' at any time to see what is planned, what is
generated, and how the last run went.
`

const topicConfig = `Configuration Reference
=======================

bookforge.yaml lives at the project root. The generate, plan, and
status commands search upward from the current directory to find it.

Fields:

  book            Book title. Required.
  model           Generation model. Default: gpt-5.1
  max-rounds      Continuation round budget per example. Default: 3
  plan-tokens     Max output tokens for one planning call. Default: 4000
  example-tokens  Max output tokens per example request. Default: 8000
  poll-seconds    Batch poll interval. Default: 10
  chapters        List of chapters, in book order.

Each chapter:

  title       Chapter title. Must be unique. Required.
  file        Output file under themes/. Defaults to a slug of the
              title plus ".tex". Must not contain path separators.
  sections    Section titles, unique within the chapter. Required.

Example:

  book: Methods of Applied Mathematics
  chapters:
    - title: Linear Algebra and Matrix Methods
      file: linear-algebra.tex
      sections:
        - Eigenvalues and Eigenvectors
`

const topicMarkers = `The Marker Protocol
===================

Every generated example is asked to wrap its two halves in literal
marker lines:

  %%% INQUIRY START %%%
  ... inquiry-based problem and hints ...
  %%% INQUIRY END %%%
  %%% SOLUTION START %%%
  ... full worked solution ...
  %%% SOLUTION END %%%

An example is complete when all four markers are present in the
accumulated text with each start before its end. Completion is always
judged over the full accumulated text, so a solution that closes in a
continuation round counts.

Incomplete examples carry a reason:

  max_output_tokens   The service truncated the reply mid-generation
                      (the most common case).
  markers_missing     The reply finished but the markers never closed.
  no_response         The request errored or returned nothing; the
                      accumulated text is left untouched.

At assembly time, an example whose solution block never closed falls
back to its full accumulated text, so partial work still lands in the
chapter file instead of vanishing.
`

const topicPipeline = `Generation Pipeline
===================

A generate run has three phases.

Phase 1 — planning. Each (chapter, section) pair gets one planning
call producing a narrative plus a list of example specs. Plans are
cached under plans/ as JSON; cached sections never hit the service
again. A malformed planning reply skips that section for the run and
caches nothing.

Phase 2 — batch rounds. Every planned example becomes one job with a
stable custom_id:

  example::<chapter-slug>::<section-slug>::<index>

Round 1 submits all jobs as a single batch. Results are parsed; jobs
whose accumulated text lacks the closing markers form the frontier for
round 2, which submits continuation prompts showing the partial text.
This repeats until the frontier empties or max-rounds is spent. Jobs
still incomplete at the budget are finalized with whatever text they
accumulated — a warning, never a failure.

Phase 3 — assembly. Inquiry and solution blocks are cut out of each
job's text and written into the chapter file, together with the
section narratives as LaTeX comments. A run summary is saved to
batch/summary.json.
`

const topicResume = `Caching and Resuming
====================

Everything expensive is cached on disk, so interrupting a run costs
only the round in flight.

plans/<slug>.json        One file per planned section. Delete a file
                         to force replanning that section.

batch/requests_roundN.jsonl
batch/results_roundN.jsonl
                         One pair per round. Request files are rebuilt
                         from job state on every run; a results file
                         already on disk is parsed instead of
                         resubmitting, so a re-run after an interrupt
                         never re-spends batch quota on finished
                         rounds.

batch/summary.json       Outcome of the last run, shown by
                         'bookforge status'.

Running generate with no OPENAI_API_KEY works entirely from these
cached artifacts: cached plans are used, stored round results are
parsed, and chapters are assembled. Sections or rounds with no cached
artifact are skipped with a warning.
`
