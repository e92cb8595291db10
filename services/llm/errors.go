package llm

import (
	"fmt"
	"time"
)

// TimeoutError is returned when a call exceeds the configured timeout.
type TimeoutError struct {
	Provider string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s request timed out after %s", e.Provider, e.Timeout)
}

// AuthError is returned when the provider rejects the API key (401/403).
type AuthError struct {
	Provider string
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s authentication failed: %s", e.Provider, e.Message)
}

// RateLimitError is returned on HTTP 429. It is not retried.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s rate limit exceeded (retry after %s): %s", e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("%s rate limit exceeded: %s", e.Provider, e.Message)
}

// ProviderError covers every other upstream failure.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// retryable reports whether a failed attempt may be repeated
func retryable(err error) bool {
	switch e := err.(type) {
	case *AuthError, *RateLimitError, *TimeoutError:
		return false
	case *ProviderError:
		return e.StatusCode == 0 || e.StatusCode >= 500
	}
	return false
}
