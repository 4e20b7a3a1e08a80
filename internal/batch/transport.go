package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	openai "github.com/openai/openai-go"

	"github.com/jfaraday/bookforge/internal/state"
	"github.com/jfaraday/bookforge/internal/ux"
)

// Transport moves one round's request file through the external batch
// service and persists the raw result lines. It does not interpret
// result content. Tests substitute a fake.
type Transport interface {
	Run(ctx context.Context, round int, requestsPath, resultsPath string) error
}

// OpenAITransport submits batches to the OpenAI Batch API and polls
// until the batch reaches a terminal state.
type OpenAITransport struct {
	Client       openai.Client
	PollInterval time.Duration
}

func (t *OpenAITransport) Run(ctx context.Context, round int, requestsPath, resultsPath string) error {
	f, err := os.Open(requestsPath)
	if err != nil {
		return fmt.Errorf("opening requests file: %w", err)
	}
	defer f.Close()

	file, err := t.Client.Files.New(ctx, openai.FileNewParams{
		File:    f,
		Purpose: openai.FilePurposeBatch,
	})
	if err != nil {
		return fmt.Errorf("round %d: uploading batch input: %w", round, err)
	}

	bj, err := t.Client.Batches.New(ctx, openai.BatchNewParams{
		InputFileID:      file.ID,
		Endpoint:         openai.BatchNewParamsEndpointV1Responses,
		CompletionWindow: openai.BatchNewParamsCompletionWindow24h,
	})
	if err != nil {
		return fmt.Errorf("round %d: creating batch job: %w", round, err)
	}
	ux.BatchCreated(round, bj.ID)

	b, err := t.poll(ctx, round, bj.ID)
	if err != nil {
		return err
	}

	if b.OutputFileID == "" {
		return fmt.Errorf("round %d: completed batch %s has no output file", round, b.ID)
	}
	res, err := t.Client.Files.Content(ctx, b.OutputFileID)
	if err != nil {
		return fmt.Errorf("round %d: downloading batch results: %w", round, err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("round %d: reading batch results: %w", round, err)
	}
	if err := state.WriteFileAtomic(resultsPath, data, 0644); err != nil {
		return fmt.Errorf("round %d: persisting batch results: %w", round, err)
	}
	return nil
}

// poll checks the batch until it terminates. The only cancellation here
// is the context; the batch itself runs server-side within its
// completion window.
func (t *OpenAITransport) poll(ctx context.Context, round int, batchID string) (*openai.Batch, error) {
	interval := t.PollInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		b, err := t.Client.Batches.Get(ctx, batchID)
		if err != nil {
			return nil, fmt.Errorf("round %d: polling batch %s: %w", round, batchID, err)
		}
		ux.BatchProgress(round, string(b.Status), b.RequestCounts.Completed, b.RequestCounts.Total)

		switch b.Status {
		case openai.BatchStatusCompleted:
			return b, nil
		case openai.BatchStatusFailed, openai.BatchStatusCancelled, openai.BatchStatusExpired:
			return nil, fmt.Errorf("round %d: batch %s did not complete (status %s)", round, batchID, b.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
