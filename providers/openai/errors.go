package openai

import (
	"encoding/json"
	"net/http"

	"github.com/BaconStrps/go-gpt/core"
)

// openaiErrorResponse is the error envelope the API returns instead of a
// completion when a request is rejected.
type openaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// normalizeError converts an HTTP error response to a ProviderError with
// the appropriate sentinel.
func normalizeError(status int, body []byte) error {
	var errResp openaiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}

	code := errResp.Error.Code
	if code == "" {
		code = errResp.Error.Type
	}
	if code == "" {
		code = "unknown_error"
	}

	var sentinel error
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		sentinel = core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = core.ErrUnauthorized
	case status == http.StatusTooManyRequests:
		sentinel = core.ErrRateLimited
	default:
		sentinel = core.ErrServer
	}

	return &core.ProviderError{
		Provider: "openai",
		Status:   status,
		Code:     code,
		Message:  message,
		Err:      sentinel,
	}
}

// newNetworkError creates a ProviderError for network-related failures.
func newNetworkError(err error) error {
	return &core.ProviderError{
		Provider: "openai",
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return &core.ProviderError{
		Provider: "openai",
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}
