package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrTeamNotFound means the upstream has no schedule for the team. Not retried.
	ErrTeamNotFound = errors.New("team not found upstream")
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Is lets a 404 match ErrTeamNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrTeamNotFound && e.StatusCode == http.StatusNotFound
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// RetryDelay exposes Retry-After to the retry policy.
func (e *RateLimitError) RetryDelay() time.Duration {
	return e.RetryAfter
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsPermanent reports whether retrying err cannot help.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrTeamNotFound) || errors.Is(err, ErrProviderUnavailable)
}
