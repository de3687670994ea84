package optimize

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/kkkk66/GROWit/internal/llm"
)

// Creativity setting tuned for varied but on-schema output.
const generationTemperature = 0.8

// Client runs one end-to-end generation: schema, prompt, provider call,
// parse, validate, classify.
type Client struct {
	LLM llm.Client
}

// Generate calls the provider with a platform-conditioned schema and returns
// the typed result. All failures carry a taxonomy Kind.
func (c *Client) Generate(ctx context.Context, input UserInput, apiKey string) (*OptimizationResult, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, NewError(KindMissingCredential, errors.New("no API key provided"))
	}

	req := llm.Request{
		Prompt:      ComposePrompt(input),
		Schema:      BuildSchema(input.Platforms),
		Temperature: generationTemperature,
		APIKey:      apiKey,
	}

	text, err := c.LLM.GenerateStructured(ctx, req)
	if err != nil {
		return nil, ClassifyProviderError(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewError(KindEmptyResponse, errors.New("provider returned empty text"))
	}

	var result OptimizationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, NewError(KindMalformedResponse, err)
	}
	if err := validateResult(&result, input.Platforms); err != nil {
		return nil, NewError(KindMalformedResponse, err)
	}

	return &result, nil
}
