package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier re-issues failed generations. Transient upstream failures
// back off exponentially with jitter; malformed output is regenerated
// a single time, since a model that produced invalid JSON once tends
// to keep producing it for the same prompt.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps p so transient failures are retried per cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	reshaped := false

	for attempt := 0; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case classFatal:
			return nil, err
		case classReshape:
			if reshaped {
				return nil, err
			}
			reshaped = true
		}

		if attempt+1 >= r.cfg.MaxAttempts {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay(attempt, err)):
		}
	}
}

// delay computes the pause before the next attempt. A rate limit that
// names its own retry window wins over the backoff curve.
func (r *retrier) delay(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	wait := r.cfg.InitialWait
	for range attempt {
		wait = time.Duration(float64(wait) * r.cfg.Multiplier)
		if wait >= r.cfg.MaxWait {
			wait = r.cfg.MaxWait
			break
		}
	}

	// ±20% jitter keeps concurrent sessions from retrying in step.
	if spread := wait / 5; spread > 0 {
		wait += rand.N(2*spread) - spread
	}
	return wait
}
