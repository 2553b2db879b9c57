package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (HTTP 429).
// Detection is always by structured status code, never by matching substrings
// of error messages.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrService indicates a transport or HTTP failure talking to the provider.
// Status carries the HTTP status code when one was received, zero otherwise.
type ErrService struct {
	Status int
	Err    error
}

func (e *ErrService) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("model service error (HTTP %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("model service error: %v", e.Err)
}

func (e *ErrService) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model responded but the content does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrEmptyResult indicates an image call succeeded but returned zero images.
type ErrEmptyResult struct {
	Prompt string
}

func (e *ErrEmptyResult) Error() string {
	return "model returned no images"
}

// IsRateLimit reports whether err is (or wraps) a rate-limit error.
func IsRateLimit(err error) bool {
	var rl *ErrRateLimit
	return errors.As(err, &rl)
}
