// Package session manages an ongoing conversation with a chat-completion
// service: a bounded, ordered dialogue history, a FIFO queue of messages
// awaiting transmission, and the exchange protocol that ties them to a
// transport.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/BaconStrps/go-gpt/core"
)

// Session is one conversation. It exclusively owns its history and
// pending queue; no two sessions share state. All methods are safe for
// concurrent use.
//
// Exchange holds the history lock for the full network round-trip, so at
// most one exchange is in flight per session at any time. Submit only
// touches the pending queue and never blocks on I/O.
type Session struct {
	id        string
	model     core.ModelID
	cfg       Config
	transport core.ChatSender
	telemetry core.TelemetryHook

	histMu  sync.Mutex
	history []core.Message

	pendMu  sync.Mutex
	pending []core.Message
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Model returns the model this session talks to.
func (s *Session) Model() core.ModelID {
	return s.model
}

// Submit enqueues a user message for a later Exchange. It never blocks
// on an in-flight exchange and always succeeds.
func (s *Session) Submit(text string) error {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()
	s.pending = append(s.pending, core.NewMessage(core.RoleUser, text))
	return nil
}

// ExchangeOption adjusts a single Exchange call.
type ExchangeOption func(*exchangeOptions)

type exchangeOptions struct {
	userTag    string
	hasUserTag bool
}

// WithUserTag substitutes the configured user tag for this exchange only.
func WithUserTag(tag string) ExchangeOption {
	return func(o *exchangeOptions) {
		o.userTag = tag
		o.hasUserTag = true
	}
}

// Exchange dequeues the oldest pending message, sends the full
// conversation context to the transport, records the reply in history
// and returns it.
//
// With an empty pending queue it fails with core.ErrNoPendingMessage and
// leaves history untouched. When the transport fails, the dequeued user
// message has already been consumed and (unless RollbackOnError is set)
// stays in history as an unanswered turn; retrying requires a fresh
// Submit.
func (s *Session) Exchange(ctx context.Context, opts ...ExchangeOption) (core.Message, error) {
	var options exchangeOptions
	for _, opt := range opts {
		opt(&options)
	}

	// Taking the history lock before dequeuing serializes concurrent
	// exchanges: the second caller blocks here and dequeues only after
	// the first has recorded its reply (or failed).
	s.histMu.Lock()
	defer s.histMu.Unlock()

	msg, ok := s.popPending()
	if !ok {
		return core.Message{}, core.ErrNoPendingMessage
	}

	// Soft bound: +2 accounts for the message being appended and its
	// forthcoming reply, *2 weighs each user/assistant pair against
	// MaxLen as one turn.
	if (len(s.history)+2)*2 >= s.cfg.MaxLen && len(s.history) > 0 {
		s.history = s.history[1:]
	}
	s.history = append(s.history, msg)

	req := s.assemble(&options)

	start := time.Now()
	s.telemetry.OnRequestStart(core.RequestStartEvent{
		Provider: transportID(s.transport),
		Model:    s.model,
		Start:    start,
	})

	resp, err := s.transport.Chat(ctx, req)
	if err == nil && len(resp.Choices) == 0 {
		err = core.ErrNoChoices
	}

	usage := core.TokenUsage{}
	if resp != nil {
		usage = resp.Usage
	}
	s.telemetry.OnRequestEnd(core.RequestEndEvent{
		Provider: transportID(s.transport),
		Model:    s.model,
		Start:    start,
		End:      time.Now(),
		Usage:    usage,
		Err:      err,
	})
	if err != nil {
		if s.cfg.RollbackOnError {
			s.history = s.history[:len(s.history)-1]
		}
		return core.Message{}, err
	}

	reply := resp.Choices[0].Message
	s.history = append(s.history, reply)
	return reply, nil
}

// Snapshot returns the system preamble followed by a copy of the current
// history, in order. Pending messages are not included.
func (s *Session) Snapshot() []core.Message {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	out := make([]core.Message, 0, len(s.history)+1)
	out = append(out, s.cfg.System)
	return append(out, s.history...)
}

// HistoryLen returns the number of exchanged messages in history,
// excluding the system preamble.
func (s *Session) HistoryLen() int {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	return len(s.history)
}

// PendingLen returns the number of submitted messages not yet exchanged.
func (s *Session) PendingLen() int {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()
	return len(s.pending)
}

// Clear resets the conversation history. Pending messages are kept.
func (s *Session) Clear() {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	s.history = nil
}

func (s *Session) popPending() (core.Message, bool) {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()

	if len(s.pending) == 0 {
		return core.Message{}, false
	}
	msg := s.pending[0]
	s.pending = s.pending[1:]
	return msg, true
}

// assemble builds the outgoing request from the configuration and the
// current history. Pure with respect to session state; callers hold the
// history lock.
func (s *Session) assemble(opts *exchangeOptions) *core.ChatRequest {
	msgs := make([]core.Message, 0, len(s.history)+1)
	msgs = append(msgs, s.cfg.System)
	msgs = append(msgs, s.history...)

	temperature := s.cfg.Temperature
	maxTokens := s.cfg.MaxTokens
	topP := s.cfg.TopP
	presence := s.cfg.PresencePenalty
	frequency := s.cfg.FrequencyPenalty

	req := &core.ChatRequest{
		Model:            s.model,
		Messages:         msgs,
		Temperature:      &temperature,
		MaxTokens:        &maxTokens,
		TopP:             &topP,
		PresencePenalty:  &presence,
		FrequencyPenalty: &frequency,
	}

	switch {
	case opts.hasUserTag:
		tag := opts.userTag
		req.User = &tag
	case s.cfg.hasUserTag:
		tag := s.cfg.UserTag
		req.User = &tag
	}

	return req
}

func transportID(t core.ChatSender) string {
	if p, ok := t.(interface{ ID() string }); ok {
		return p.ID()
	}
	return ""
}
