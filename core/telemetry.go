package core

import (
	"context"
	"log/slog"
	"time"
)

// RequestStartEvent is emitted before a request is sent to a provider.
type RequestStartEvent struct {
	Provider string
	Model    ModelID
	Start    time.Time
}

// RequestEndEvent is emitted after a request completes, successfully or not.
type RequestEndEvent struct {
	Provider string
	Model    ModelID
	Start    time.Time
	End      time.Time
	Usage    TokenUsage
	Err      error
}

// TelemetryHook receives request lifecycle events.
// Implementations must be safe for concurrent use.
type TelemetryHook interface {
	OnRequestStart(e RequestStartEvent)
	OnRequestEnd(e RequestEndEvent)
}

// NoopTelemetryHook discards all events. It is the default hook.
type NoopTelemetryHook struct{}

func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

// SlogTelemetryHook emits request events to a slog.Logger.
// Event fields are flattened as top-level slog attributes.
type SlogTelemetryHook struct {
	logger *slog.Logger
}

// NewSlogTelemetryHook creates a SlogTelemetryHook that emits to the
// given logger. A nil logger falls back to slog.Default.
func NewSlogTelemetryHook(logger *slog.Logger) *SlogTelemetryHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTelemetryHook{logger: logger}
}

func (h *SlogTelemetryHook) OnRequestStart(e RequestStartEvent) {
	h.logger.LogAttrs(context.Background(), slog.LevelDebug, "request start",
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
	)
}

func (h *SlogTelemetryHook) OnRequestEnd(e RequestEndEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("provider", e.Provider),
		slog.String("model", string(e.Model)),
		slog.Duration("elapsed", e.End.Sub(e.Start)),
		slog.Int("total_tokens", e.Usage.TotalTokens),
	}
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}

	h.logger.LogAttrs(context.Background(), level, "request end", attrs...)
}
