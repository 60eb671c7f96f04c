package tmdb

import (
	"context"
)

// Result is a TMDb document that parsed as JSON and carried no error
// sentinel. Body may be shared between coalesced callers and must not be
// modified.
type Result struct {
	Endpoint Endpoint
	Body     []byte
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Fetch(ctx context.Context, req Request) (*Result, error)
}
