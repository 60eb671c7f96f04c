package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidLanguage     = errors.New("invalid language")
	ErrInvalidMovieID      = errors.New("invalid movie id")
	ErrMissingQuery        = errors.New("missing query")
	ErrMalformedResponse   = errors.New("malformed upstream response")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNoResults           = errors.New("no results")
)

// UpstreamError is an error reported by TMDb itself, either through the HTTP
// status or through the status_code field of the response body.
type UpstreamError struct {
	HTTPStatus int
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb error: http %d, status_code %d", e.HTTPStatus, e.StatusCode)
	}
	return fmt.Sprintf("tmdb error: http %d, status_code %d: %s", e.HTTPStatus, e.StatusCode, e.Message)
}

func (e *UpstreamError) NotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidLanguage) ||
		errors.Is(err, ErrInvalidMovieID) ||
		errors.Is(err, ErrMissingQuery)
}
