package session

import (
	"github.com/google/uuid"

	"github.com/BaconStrps/go-gpt/core"
)

// Defaults applied by New. Out-of-range values passed to the builder are
// accepted and forwarded as-is; the remote service is the authority on
// rejecting them.
const (
	DefaultTemperature      = 1.0
	DefaultMaxTokens        = 4096
	DefaultTopP             = 1.0
	DefaultPresencePenalty  = 0.0
	DefaultFrequencyPenalty = 0.0
	DefaultMaxLen           = 5
	DefaultSystemPrompt     = "You are a helpful assistant."
)

// Config holds the immutable settings of a Session. It is assembled by
// the Builder and never mutated after Build.
type Config struct {
	System           core.Message
	Temperature      float32
	MaxTokens        int
	TopP             float32
	PresencePenalty  float32
	FrequencyPenalty float32
	UserTag          string
	hasUserTag       bool
	MaxLen           int
	RollbackOnError  bool
}

// Builder accumulates session configuration over defaults.
// Builder is NOT thread-safe and should not be shared across goroutines.
type Builder struct {
	cfg       Config
	telemetry core.TelemetryHook
}

// New returns a Builder seeded with the default configuration.
func New() *Builder {
	return &Builder{
		cfg: Config{
			System:           core.NewMessage(core.RoleSystem, DefaultSystemPrompt),
			Temperature:      DefaultTemperature,
			MaxTokens:        DefaultMaxTokens,
			TopP:             DefaultTopP,
			PresencePenalty:  DefaultPresencePenalty,
			FrequencyPenalty: DefaultFrequencyPenalty,
			MaxLen:           DefaultMaxLen,
		},
		telemetry: core.NoopTelemetryHook{},
	}
}

// Temperature sets the sampling temperature.
func (b *Builder) Temperature(v float32) *Builder {
	b.cfg.Temperature = v
	return b
}

// MaxTokens sets the completion token limit.
func (b *Builder) MaxTokens(n int) *Builder {
	b.cfg.MaxTokens = n
	return b
}

// TopP sets the nucleus sampling parameter.
func (b *Builder) TopP(v float32) *Builder {
	b.cfg.TopP = v
	return b
}

// PresencePenalty sets the presence penalty.
func (b *Builder) PresencePenalty(v float32) *Builder {
	b.cfg.PresencePenalty = v
	return b
}

// FrequencyPenalty sets the frequency penalty.
func (b *Builder) FrequencyPenalty(v float32) *Builder {
	b.cfg.FrequencyPenalty = v
	return b
}

// UserTag sets the end-user identifier sent with every request.
// Exchange can substitute a per-call tag via WithUserTag.
func (b *Builder) UserTag(tag string) *Builder {
	b.cfg.UserTag = tag
	b.cfg.hasUserTag = true
	return b
}

// System replaces the default system preamble. The preamble is always a
// system-role message; only its content is configurable.
func (b *Builder) System(content string) *Builder {
	b.cfg.System = core.NewMessage(core.RoleSystem, content)
	return b
}

// MaxLen bounds the conversation history. The bound is soft: once
// (history length + 2) * 2 reaches it, the oldest entry is evicted
// before each exchange.
func (b *Builder) MaxLen(n int) *Builder {
	b.cfg.MaxLen = n
	return b
}

// RollbackOnError makes a failed exchange remove the user message it
// appended to history, instead of recording the unanswered turn.
func (b *Builder) RollbackOnError(v bool) *Builder {
	b.cfg.RollbackOnError = v
	return b
}

// Telemetry sets the telemetry hook for the session.
func (b *Builder) Telemetry(h core.TelemetryHook) *Builder {
	if h != nil {
		b.telemetry = h
	}
	return b
}

// Build creates a Session for the given model over the given transport.
// The session borrows the transport; the credential lives with it.
// History and pending queue start empty.
func (b *Builder) Build(model core.ModelID, transport core.ChatSender) *Session {
	return &Session{
		id:        uuid.Must(uuid.NewV7()).String(),
		model:     model,
		cfg:       b.cfg,
		transport: transport,
		telemetry: b.telemetry,
	}
}
