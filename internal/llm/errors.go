package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Provider errors carry a Retryable method so the retry layer can
// classify them without enumerating concrete types. Quiz generation
// treats anything else, network errors included, as transient.
type retryable interface {
	Retryable() bool
}

// ErrRateLimit is a 429 from the backend. RetryAfter, when the backend
// supplied one, overrides the computed backoff.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error   { return e.Err }
func (e *ErrRateLimit) Retryable() bool { return true }

// ErrInvalidResponse means the model produced output that is not the
// JSON the quiz schema asked for. Content holds the offending output
// for the request log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// Retryable is true, but the retry layer caps schema failures at one
// extra attempt: a model that misses the schema twice will keep missing.
func (e *ErrInvalidResponse) Retryable() bool { return true }

// ErrProviderUnavailable means the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error   { return e.Err }
func (e *ErrProviderUnavailable) Retryable() bool { return true }

// ErrMaxTokensExceeded means the quiz was truncated at the MaxTokens
// cap. Retrying cannot help; the request itself is misconfigured.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

func (e *ErrMaxTokensExceeded) Retryable() bool { return false }
