package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BaconStrps/go-gpt/core"
)

// completionsPath is the API endpoint for text completions.
const completionsPath = "/completions"

// Complete sends a text-completion request and returns the parsed response.
func (p *OpenAI) Complete(ctx context.Context, req *core.CompletionRequest) (*core.CompletionResponse, error) {
	if req.Prompt == "" {
		return nil, core.ErrNoPrompt
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := p.post(ctx, completionsPath, body)
	if err != nil {
		return nil, err
	}

	var resp core.CompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newDecodeError(err)
	}

	return &resp, nil
}
