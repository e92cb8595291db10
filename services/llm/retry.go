package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBackoff = time.Second
)

// CollaboratorFunc adapts a plain function to the Collaborator interface.
type CollaboratorFunc func(ctx context.Context, req CompletionRequest) (string, error)

func (f CollaboratorFunc) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return f(ctx, req)
}

// retryPolicy repeats transient failures with exponential backoff
// (backoff, 2*backoff, 4*backoff, ...).
type retryPolicy struct {
	provider   string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	log        *zap.Logger
}

func newRetryPolicy(provider string, timeout time.Duration, maxRetries int, backoff time.Duration, log *zap.Logger) retryPolicy {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if log == nil {
		log = zap.NewNop()
	}
	return retryPolicy{
		provider:   provider,
		timeout:    timeout,
		maxRetries: maxRetries,
		backoff:    backoff,
		log:        log,
	}
}

// run executes attempt under the call timeout. Deadline expiry is reported
// as a TimeoutError; a cancelled parent context is returned as is.
func (p retryPolicy) run(ctx context.Context, attempt func(ctx context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var lastErr error
	for i := 0; i <= p.maxRetries; i++ {
		if i > 0 {
			wait := p.backoff << (i - 1)
			p.log.Debug("retrying collaborator request",
				zap.String("provider", p.provider),
				zap.Int("attempt", i),
				zap.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return "", p.contextError(ctx, lastErr)
			case <-time.After(wait):
			}
		}

		text, err := attempt(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", p.contextError(ctx, err)
		}
		if !retryable(err) {
			return "", err
		}
		p.log.Warn("collaborator request failed",
			zap.String("provider", p.provider),
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
	}
	return "", lastErr
}

func (p retryPolicy) contextError(ctx context.Context, cause error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Provider: p.provider, Timeout: p.timeout}
	}
	if cause != nil {
		return cause
	}
	return ctx.Err()
}
