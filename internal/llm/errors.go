package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Provider failures fall into three classes for the turn loop:
// transient upstream trouble backs off and retries, malformed model
// output gets one regeneration, and everything else surfaces to the
// caller so the student can resubmit the turn.

// ErrRateLimit reports a 429 from the upstream API. RetryAfter, when
// the API named one, bounds how long the retrier waits before the
// next attempt.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed JSON decoding
// or schema validation. Content carries the raw output for debugging.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports an unreachable or failing upstream.
// A turn that hits it can be resubmitted unchanged: no dialogue state
// advances on a failed generation.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports output truncated at the token cap.
// Tutor turns are short; hitting the cap means the cap is
// misconfigured, not that the request was unlucky, so it is never
// retried.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model output truncated at the token cap"
}

// retryClass buckets an error for the retrier.
type retryClass int

const (
	classFatal     retryClass = iota // surface immediately
	classReshape                     // regenerate once
	classTransient                   // back off and retry
)

func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return classFatal
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return classFatal
	}
	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		return classReshape
	}
	// Rate limits, 5xx, and plain network failures all back off.
	return classTransient
}

// statusError converts an upstream HTTP status into the matching
// provider error. Anything that is not a rate limit reads as the
// provider being unavailable.
func statusError(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
