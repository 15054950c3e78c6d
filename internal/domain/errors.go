package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these to HTTP statuses and a stable
// machine-readable "kind" field; everything else collapses to a 500.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotConfigured       = errors.New("not configured")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrQuotaExceeded       = errors.New("usage quota exceeded")
)

// UpstreamStatusError reports a non-success HTTP status from a proxied
// service. Single attempt only: the gateway never retries.
type UpstreamStatusError struct {
	Service string
	Status  int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s: upstream status %d", e.Service, e.Status)
}

// Kind returns the machine-readable error kind for a gateway error.
func Kind(err error) string {
	var use *UpstreamStatusError
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotConfigured):
		return "configuration_error"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.As(err, &use):
		return "upstream_error"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "internal_error"
	}
}
