package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
)

type Endpoint string

const (
	EndpointTrending     Endpoint = "trending"
	EndpointTopRated     Endpoint = "top_rated"
	EndpointMovieDetails Endpoint = "movie_details"
	EndpointMovieSearch  Endpoint = "movie_search"
	EndpointMovieReviews Endpoint = "movie_reviews"
)

const (
	trendingPath     = "/3/trending/movie/day"
	topRatedPath     = "/3/movie/top_rated"
	movieDetailsPath = "/3/movie/%d"
	movieSearchPath  = "/3/search/movie"
	movieReviewsPath = "/3/movie/%d/reviews"

	// DetailsAppendToResponse embeds the trailers and the cast/crew into the details document.
	DetailsAppendToResponse = "videos,credits"
)

// Request is an immutable snapshot of one outbound TMDb call. It is built
// fresh for every inbound request and never shared between them.
type Request struct {
	endpoint Endpoint
	path     string
	query    url.Values
}

func newRequest(endpoint Endpoint, path string, lang Language, extra ...string) Request {
	query := url.Values{}
	query.Set("language", lang.String())
	for i := 0; i+1 < len(extra); i += 2 {
		query.Set(extra[i], extra[i+1])
	}
	return Request{endpoint: endpoint, path: path, query: query}
}

func NewTrendingRequest(lang Language) Request {
	return newRequest(EndpointTrending, trendingPath, lang)
}

func NewTopRatedRequest(lang Language, region string) Request {
	if region == "" {
		return newRequest(EndpointTopRated, topRatedPath, lang)
	}
	return newRequest(EndpointTopRated, topRatedPath, lang, "region", region)
}

func NewMovieDetailsRequest(lang Language, id MovieID) Request {
	return newRequest(
		EndpointMovieDetails,
		fmt.Sprintf(movieDetailsPath, id),
		lang,
		"append_to_response", DetailsAppendToResponse,
	)
}

func NewMovieSearchRequest(lang Language, query SearchQuery) Request {
	return newRequest(EndpointMovieSearch, movieSearchPath, lang, "query", query.String())
}

func NewMovieReviewsRequest(lang Language, id MovieID) Request {
	return newRequest(EndpointMovieReviews, fmt.Sprintf(movieReviewsPath, id), lang)
}

func (r Request) Endpoint() Endpoint { return r.endpoint }

func (r Request) Path() string { return r.path }

// Query returns a copy of the query parameters; mutating it does not affect r.
func (r Request) Query() url.Values {
	out := make(url.Values, len(r.query))
	for k, v := range r.query {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Key identifies requests that would produce the same upstream call.
func (r Request) Key() string {
	return r.path + "?" + r.query.Encode()
}

func (r Request) String() string {
	return string(r.endpoint) + " " + r.Key()
}

// MovieID is a TMDb movie identifier.
type MovieID int64

func ParseMovieID(raw string) (MovieID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMovieID, raw)
	}
	return MovieID(id), nil
}
