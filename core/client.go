package core

import (
	"context"
	"time"
)

// Client is a one-shot entry point for chat and completion requests.
// Conversation state lives in the session package; Client itself is
// stateless and safe for concurrent use.
type Client struct {
	provider  Provider
	telemetry TelemetryHook
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Client with the given provider and options.
func NewClient(p Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:  p,
		telemetry: NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTelemetry sets the telemetry hook for the client.
func WithTelemetry(h TelemetryHook) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.telemetry = h
		}
	}
}

// Chat returns a ChatBuilder for constructing and executing a chat request.
func (c *Client) Chat(model ModelID) *ChatBuilder {
	return &ChatBuilder{
		client: c,
		req:    ChatRequest{Model: model},
	}
}

// Complete returns a CompletionBuilder for constructing and executing a
// text-completion request.
func (c *Client) Complete(model ModelID) *CompletionBuilder {
	return &CompletionBuilder{
		client: c,
		req:    CompletionRequest{Model: model},
	}
}

// ChatBuilder provides a fluent API for building chat requests.
// ChatBuilder is NOT thread-safe and should not be shared across goroutines.
type ChatBuilder struct {
	client *Client
	req    ChatRequest
}

// System appends a system message.
func (b *ChatBuilder) System(s string) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, Message{Role: RoleSystem, Content: s})
	return b
}

// User appends a user message.
func (b *ChatBuilder) User(s string) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, Message{Role: RoleUser, Content: s})
	return b
}

// Assistant appends an assistant message.
func (b *ChatBuilder) Assistant(s string) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, Message{Role: RoleAssistant, Content: s})
	return b
}

// Messages appends a slice of messages in order.
func (b *ChatBuilder) Messages(msgs ...Message) *ChatBuilder {
	b.req.Messages = append(b.req.Messages, msgs...)
	return b
}

// Temperature sets the temperature parameter.
func (b *ChatBuilder) Temperature(v float32) *ChatBuilder {
	b.req.Temperature = &v
	return b
}

// MaxTokens sets the maximum tokens parameter.
func (b *ChatBuilder) MaxTokens(n int) *ChatBuilder {
	b.req.MaxTokens = &n
	return b
}

// TopP sets the nucleus sampling parameter.
func (b *ChatBuilder) TopP(v float32) *ChatBuilder {
	b.req.TopP = &v
	return b
}

// PresencePenalty sets the presence penalty parameter.
func (b *ChatBuilder) PresencePenalty(v float32) *ChatBuilder {
	b.req.PresencePenalty = &v
	return b
}

// FrequencyPenalty sets the frequency penalty parameter.
func (b *ChatBuilder) FrequencyPenalty(v float32) *ChatBuilder {
	b.req.FrequencyPenalty = &v
	return b
}

// Stop sets the stop sequence.
func (b *ChatBuilder) Stop(s string) *ChatBuilder {
	b.req.Stop = &s
	return b
}

// N sets the number of choices to generate.
func (b *ChatBuilder) N(n int) *ChatBuilder {
	b.req.N = &n
	return b
}

// LogitBias adjusts the likelihood of the given tokens appearing.
func (b *ChatBuilder) LogitBias(bias map[string]int) *ChatBuilder {
	b.req.LogitBias = bias
	return b
}

// UserTag identifies the end user for abuse monitoring.
func (b *ChatBuilder) UserTag(tag string) *ChatBuilder {
	b.req.User = &tag
	return b
}

// validate checks that the request is valid. Parameter ranges are not
// checked; the remote service is the authority on rejecting them.
func (b *ChatBuilder) validate() error {
	if b.req.Model == "" {
		return ErrModelRequired
	}
	if len(b.req.Messages) == 0 {
		return ErrNoMessages
	}
	return nil
}

// GetResponse executes the chat request and returns the response.
func (b *ChatBuilder) GetResponse(ctx context.Context) (*ChatResponse, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	providerID := b.client.provider.ID()

	b.client.telemetry.OnRequestStart(RequestStartEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
	})

	resp, err := b.client.provider.Chat(ctx, &b.req)

	usage := TokenUsage{}
	if resp != nil {
		usage = resp.Usage
	}
	b.client.telemetry.OnRequestEnd(RequestEndEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
		End:      time.Now(),
		Usage:    usage,
		Err:      err,
	})

	return resp, err
}

// CompletionBuilder provides a fluent API for building completion requests.
// CompletionBuilder is NOT thread-safe and should not be shared across goroutines.
type CompletionBuilder struct {
	client *Client
	req    CompletionRequest
}

// Prompt sets the completion prompt.
func (b *CompletionBuilder) Prompt(s string) *CompletionBuilder {
	b.req.Prompt = s
	return b
}

// Temperature sets the temperature parameter.
func (b *CompletionBuilder) Temperature(v float32) *CompletionBuilder {
	b.req.Temperature = &v
	return b
}

// MaxTokens sets the maximum tokens parameter.
func (b *CompletionBuilder) MaxTokens(n int) *CompletionBuilder {
	b.req.MaxTokens = &n
	return b
}

// TopP sets the nucleus sampling parameter.
func (b *CompletionBuilder) TopP(v float32) *CompletionBuilder {
	b.req.TopP = &v
	return b
}

// Echo makes the response include the prompt.
func (b *CompletionBuilder) Echo(v bool) *CompletionBuilder {
	b.req.Echo = &v
	return b
}

// BestOf sets server-side candidate sampling.
func (b *CompletionBuilder) BestOf(n int) *CompletionBuilder {
	b.req.BestOf = &n
	return b
}

// Logprobs requests log probabilities on the most likely tokens.
func (b *CompletionBuilder) Logprobs(n int) *CompletionBuilder {
	b.req.Logprobs = &n
	return b
}

// Stop sets the stop sequence.
func (b *CompletionBuilder) Stop(s string) *CompletionBuilder {
	b.req.Stop = &s
	return b
}

// N sets the number of completions to generate.
func (b *CompletionBuilder) N(n int) *CompletionBuilder {
	b.req.N = &n
	return b
}

// PresencePenalty sets the presence penalty parameter.
func (b *CompletionBuilder) PresencePenalty(v float32) *CompletionBuilder {
	b.req.PresencePenalty = &v
	return b
}

// FrequencyPenalty sets the frequency penalty parameter.
func (b *CompletionBuilder) FrequencyPenalty(v float32) *CompletionBuilder {
	b.req.FrequencyPenalty = &v
	return b
}

// LogitBias adjusts the likelihood of the given tokens appearing.
func (b *CompletionBuilder) LogitBias(bias map[string]int) *CompletionBuilder {
	b.req.LogitBias = bias
	return b
}

// UserTag identifies the end user for abuse monitoring.
func (b *CompletionBuilder) UserTag(tag string) *CompletionBuilder {
	b.req.User = &tag
	return b
}

// validate checks that the request is valid.
func (b *CompletionBuilder) validate() error {
	if b.req.Model == "" {
		return ErrModelRequired
	}
	if b.req.Prompt == "" {
		return ErrNoPrompt
	}
	return nil
}

// GetResponse executes the completion request and returns the response.
func (b *CompletionBuilder) GetResponse(ctx context.Context) (*CompletionResponse, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	providerID := b.client.provider.ID()

	b.client.telemetry.OnRequestStart(RequestStartEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
	})

	resp, err := b.client.provider.Complete(ctx, &b.req)

	b.client.telemetry.OnRequestEnd(RequestEndEvent{
		Provider: providerID,
		Model:    b.req.Model,
		Start:    start,
		End:      time.Now(),
		Err:      err,
	})

	return resp, err
}
