package tmdb

import (
	"context"
	"errors"
	"net/http"

	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/NeuralTrust/ReelGate/pkg/infra/httpx"
)

// FailureReason buckets a Fetch error for metrics and logs.
func FailureReason(err error) string {
	var upErr *domain.UpstreamError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &upErr):
		return "upstream_error"
	case httpx.IsOpen(err):
		return "circuit_open"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}

// BreakerSuccess tells the circuit breaker which errors still prove TMDb is
// healthy: client-side errors it reported itself, such as an unknown movie id.
func BreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.HTTPStatus < http.StatusInternalServerError && upErr.HTTPStatus != http.StatusTooManyRequests
	}
	return false
}
