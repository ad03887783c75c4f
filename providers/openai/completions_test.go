package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BaconStrps/go-gpt/core"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/completions" {
			t.Errorf("expected /completions, got %s", r.URL.Path)
		}

		var req core.CompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Prompt != "Once upon a time" {
			t.Errorf("prompt = %q", req.Prompt)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(core.CompletionResponse{
			ID:      "cmpl-123",
			Object:  "text_completion",
			Created: 1677652288,
			Model:   req.Model,
			Choices: []core.CompletionChoice{
				{Text: " there was a gopher.", Index: 0, FinishReason: "stop"},
			},
		})
	}))
	defer server.Close()

	p := New("test-key", WithBaseURL(server.URL))
	resp, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:  ModelTextDavinci003,
		Prompt: "Once upon a time",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Choices[0].Text != " there was a gopher." {
		t.Errorf("Text = %q", resp.Choices[0].Text)
	}
}

func TestCompleteRequiresPrompt(t *testing.T) {
	p := New("test-key")
	_, err := p.Complete(context.Background(), &core.CompletionRequest{Model: ModelTextDavinci003})
	if !errors.Is(err, core.ErrNoPrompt) {
		t.Errorf("err = %v, want ErrNoPrompt", err)
	}
}

func TestCompleteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	p := New("bad-key", WithBaseURL(server.URL))
	_, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:  ModelTextDavinci003,
		Prompt: "hi",
	})
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
