package cutter

import (
	"errors"
	"time"
)

// RetryPolicy decides how many times a cut request is attempted and how long
// to wait between attempts. The zero value is not usable; use DefaultPolicy
// or construct one explicitly.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the linear backoff unit: the wait before attempt n is
	// BaseDelay * (n - 1).
	BaseDelay time.Duration
}

// DefaultPolicy returns the standard policy: 3 attempts, 1.2s backoff unit.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 1200 * time.Millisecond}
}

// Delay returns the wait before the given attempt number (1-based).
// The first attempt is issued immediately.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return p.BaseDelay * time.Duration(attempt-1)
}

// ShouldRetry reports whether another attempt should be made after the given
// attempt number failed with err. Service errors are consulted for their
// status class; anything else is a transport-level failure and retryable.
func (p RetryPolicy) ShouldRetry(attempt int, err error) bool {
	if attempt >= p.MaxAttempts {
		return false
	}
	return Retryable(err)
}

// Retryable classifies an error as retryable (re-issuing the identical
// request might succeed) or terminal. 5xx and transport failures are
// retryable; 4xx and malformed success responses are terminal.
func Retryable(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.IsRetryable()
	}
	if errors.Is(err, ErrNoResultLocator) {
		return false
	}
	return true
}
