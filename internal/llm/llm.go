// Package llm holds the single-shot generation client used for section
// planning. Batch generation goes through internal/batch instead.
package llm

import "context"

// Client abstracts the text-generation service so tests can substitute
// a fake.
type Client interface {
	// Generate sends one prompt and returns the model's full output text.
	Generate(ctx context.Context, prompt string, maxOutputTokens int64) (string, error)
}
