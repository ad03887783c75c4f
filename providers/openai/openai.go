// Package openai provides an OpenAI API provider implementation for go-gpt.
package openai

import (
	"net/http"
	"time"

	"github.com/BaconStrps/go-gpt/core"
)

// DefaultBaseURL is the OpenAI API root.
const DefaultBaseURL = "https://api.openai.com/v1"

const defaultTimeout = 120 * time.Second

// Config holds the provider configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	OrgID      string
	HTTPClient *http.Client
	Headers    map[string]string
}

// OpenAI implements core.Provider against the OpenAI HTTP API.
// Safe for concurrent use by multiple sessions.
type OpenAI struct {
	config Config
}

// Option configures the provider.
type Option func(*Config)

// WithBaseURL overrides the API root, e.g. for a proxy or test server.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithOrgID sets the OpenAI-Organization header.
func WithOrgID(id string) Option {
	return func(c *Config) {
		c.OrgID = id
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithHeader adds a custom header to every request.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		c.Headers[key] = value
	}
}

// New creates an OpenAI provider with the given API key and options.
func New(apiKey string, opts ...Option) *OpenAI {
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &OpenAI{config: cfg}
}

// ID returns the provider identifier.
func (p *OpenAI) ID() string {
	return "openai"
}

// Models returns the static model catalog.
func (p *OpenAI) Models() []core.ModelInfo {
	out := make([]core.ModelInfo, len(models))
	copy(out, models)
	return out
}

// buildHeaders constructs the headers sent with every request.
func (p *OpenAI) buildHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+p.config.APIKey)
	if p.config.OrgID != "" {
		headers.Set("OpenAI-Organization", p.config.OrgID)
	}
	for key, value := range p.config.Headers {
		headers.Set(key, value)
	}
	return headers
}
