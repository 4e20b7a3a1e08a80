package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"

	"github.com/jfaraday/bookforge/internal/outtext"
)

// OpenAI implements Client using the official openai-go SDK against the
// Responses API.
type OpenAI struct {
	Model  string
	client openai.Client
}

// NewOpenAI builds a client for the given model. The API key is read
// from OPENAI_API_KEY; an empty key is an error so callers can fall
// back to cached artifacts before doing any network work.
func NewOpenAI(model string) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if model == "" {
		return nil, errors.New("llm model is required")
	}
	return &OpenAI{
		Model:  model,
		client: openai.NewClient(option.WithAPIKey(key)),
	}, nil
}

func (o *OpenAI) Generate(ctx context.Context, prompt string, maxOutputTokens int64) (string, error) {
	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           shared.ResponsesModel(o.Model),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
		MaxOutputTokens: openai.Int(maxOutputTokens),
		Reasoning:       shared.ReasoningParam{Effort: shared.ReasoningEffortMedium},
	})
	if err != nil {
		return "", err
	}
	// Normalize the SDK object to raw JSON and extract text through the
	// same walker the batch path uses.
	text := outtext.FromBody(resp)
	if text == "" {
		return "", errors.New("openai: response contained no output text")
	}
	return text, nil
}

// Batcher exposes the raw SDK client for the batch transport, which
// needs file upload and batch job endpoints rather than single calls.
func (o *OpenAI) Batcher() openai.Client {
	return o.client
}
