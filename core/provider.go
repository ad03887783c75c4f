package core

import "context"

// ChatSender is the transport contract the session manager depends on:
// send an assembled chat request, get back a parsed response or an error.
// Implementations must be safe for concurrent use across sessions.
type ChatSender interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// CompletionSender is the transport contract for the text-completion API.
type CompletionSender interface {
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// Provider is the interface that remote-service providers implement.
// See the providers package for implementations.
type Provider interface {
	// ID returns the provider identifier (e.g., "openai").
	ID() string

	// Models returns the models this provider can serve.
	Models() []ModelInfo

	ChatSender
	CompletionSender
}
