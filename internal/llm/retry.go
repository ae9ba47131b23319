package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// schemaRetryBudget caps how often a schema-invalid response is retried
// per request. One re-ask is usually enough for a transient formatting
// slip; more than that and the model simply cannot hit the schema.
const schemaRetryBudget = 1

// retryProvider decorates a Provider with exponential backoff and
// jitter for transient failures. The retry policy comes from the llm
// config section.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with the given retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.next.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	schemaRetries := 0

	var lastErr error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Context errors end the request regardless of classification.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var re retryable
		if errors.As(err, &re) && !re.Retryable() {
			return nil, err
		}
		var invalid *ErrInvalidResponse
		if errors.As(err, &invalid) {
			if schemaRetries >= schemaRetryBudget {
				return nil, err
			}
			schemaRetries++
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// wait computes the backoff before the next attempt. A backend-supplied
// Retry-After wins over the exponential schedule.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = min(d, float64(r.cfg.MaxWait))

	// Spread concurrent quiz generations apart: +-20% jitter.
	d *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(d, 0))
}
