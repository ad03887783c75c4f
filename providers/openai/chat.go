package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BaconStrps/go-gpt/core"
)

// chatPath is the API endpoint for chat completions.
const chatPath = "/chat/completions"

// Chat sends a chat-completion request and returns the parsed response.
func (p *OpenAI) Chat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, core.ErrNoMessages
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := p.post(ctx, chatPath, body)
	if err != nil {
		return nil, err
	}

	var resp core.ChatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newDecodeError(err)
	}

	for _, choice := range resp.Choices {
		if _, err := core.ParseRole(string(choice.Message.Role)); err != nil {
			return nil, newDecodeError(err)
		}
	}

	return &resp, nil
}

// post sends a JSON POST and returns the response body, normalizing
// transport and service errors.
func (p *OpenAI) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	url := p.config.BaseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, normalizeError(resp.StatusCode, raw)
	}

	return raw, nil
}
