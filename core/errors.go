package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures. Callers match against these
// with errors.Is; the concrete error usually carries provider detail in
// a wrapping ProviderError.
var (
	// ErrNetwork indicates an I/O-level failure reaching the remote service.
	ErrNetwork = errors.New("network error")

	// ErrDecode indicates the response could not be parsed into the
	// expected shape. Surfaced rather than guessed at: misreading a
	// malformed reply as a valid message would silently corrupt history.
	ErrDecode = errors.New("decode error")

	// ErrBadRequest indicates the service rejected the request parameters.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the service is throttling the caller.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer indicates a remote service failure.
	ErrServer = errors.New("server error")
)

// Usage errors: the caller violated a precondition. These are never
// retried and never reach a provider.
var (
	// ErrNoPendingMessage is returned by Session.Exchange when no
	// submitted message is waiting to be sent.
	ErrNoPendingMessage = errors.New("no pending message")

	// ErrModelRequired is returned when a request is built without a model.
	ErrModelRequired = errors.New("model is required")

	// ErrNoMessages is returned when a chat request has an empty message list.
	ErrNoMessages = errors.New("at least one message is required")

	// ErrNoPrompt is returned when a completion request has no prompt.
	ErrNoPrompt = errors.New("prompt is required")
)

// ErrNoChoices is returned when a response carries an empty choice list.
// It matches ErrDecode: the response could not be read as a reply.
var ErrNoChoices = fmt.Errorf("%w: response contains no choices", ErrDecode)

// ProviderError carries provider-specific detail about a failed request.
// Err holds the matching sentinel so errors.Is works across providers.
type ProviderError struct {
	Provider string
	Status   int
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (%d %s)", e.Provider, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
