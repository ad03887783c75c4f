// Package core provides the go-gpt wire types, provider contracts and
// sentinel errors shared by the session manager and the provider clients.
package core

import "fmt"

// ModelID is a string identifier for a model.
// Using string avoids coupling to provider-specific enums.
type ModelID string

// Role represents a message participant role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ParseRole converts a wire-format role string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSystem, RoleUser, RoleAssistant:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// Message represents a single message in a conversation.
// Messages are immutable values; they have no identity beyond their
// position in a sequence.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a Message with the given role and content.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatChoice is one candidate reply in a chat response.
type ChatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ChatRequest represents a request to a chat model.
// Optional parameters are pointers so that unset values are omitted
// from the wire payload rather than sent as zeroes.
type ChatRequest struct {
	Model            ModelID        `json:"model"`
	Messages         []Message      `json:"messages"`
	Temperature      *float32       `json:"temperature,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	TopP             *float32       `json:"top_p,omitempty"`
	PresencePenalty  *float32       `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float32       `json:"frequency_penalty,omitempty"`
	N                *int           `json:"n,omitempty"`
	Stop             *string        `json:"stop,omitempty"`
	Stream           *bool          `json:"stream,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             *string        `json:"user,omitempty"`
}

// ChatResponse represents a response from a chat model.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   ModelID      `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   TokenUsage   `json:"usage"`
}

// CompletionChoice is one candidate completion in a completion response.
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	Logprobs     *int   `json:"logprobs"`
	FinishReason string `json:"finish_reason"`
}

// CompletionRequest represents a request to a text-completion model.
type CompletionRequest struct {
	Model            ModelID        `json:"model"`
	Prompt           string         `json:"prompt"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	Temperature      *float32       `json:"temperature,omitempty"`
	TopP             *float32       `json:"top_p,omitempty"`
	N                *int           `json:"n,omitempty"`
	Stream           *bool          `json:"stream,omitempty"`
	Logprobs         *int           `json:"logprobs,omitempty"`
	Echo             *bool          `json:"echo,omitempty"`
	Stop             *string        `json:"stop,omitempty"`
	PresencePenalty  *float32       `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float32       `json:"frequency_penalty,omitempty"`
	BestOf           *int           `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             *string        `json:"user,omitempty"`
}

// CompletionResponse represents a response from a text-completion model.
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   ModelID            `json:"model"`
	Choices []CompletionChoice `json:"choices"`
}

// Feature represents a capability that a provider may support.
type Feature string

const (
	FeatureChat       Feature = "chat"
	FeatureCompletion Feature = "completion"
)

// ModelInfo describes a model a provider can serve.
type ModelInfo struct {
	ID           ModelID
	DisplayName  string
	Capabilities []Feature
}
