package tmdb_test

import (
	"errors"
	"testing"

	"github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequests(t *testing.T) {
	lang := tmdb.Language("en")

	tests := []struct {
		name     string
		req      tmdb.Request
		endpoint tmdb.Endpoint
		path     string
		query    map[string]string
	}{
		{
			name:     "trending",
			req:      tmdb.NewTrendingRequest(lang),
			endpoint: tmdb.EndpointTrending,
			path:     "/3/trending/movie/day",
			query:    map[string]string{"language": "en"},
		},
		{
			name:     "top rated with region",
			req:      tmdb.NewTopRatedRequest(lang, "gb"),
			endpoint: tmdb.EndpointTopRated,
			path:     "/3/movie/top_rated",
			query:    map[string]string{"language": "en", "region": "gb"},
		},
		{
			name:     "top rated without region",
			req:      tmdb.NewTopRatedRequest(lang, ""),
			endpoint: tmdb.EndpointTopRated,
			path:     "/3/movie/top_rated",
			query:    map[string]string{"language": "en"},
		},
		{
			name:     "movie details",
			req:      tmdb.NewMovieDetailsRequest(lang, 603),
			endpoint: tmdb.EndpointMovieDetails,
			path:     "/3/movie/603",
			query:    map[string]string{"language": "en", "append_to_response": "videos,credits"},
		},
		{
			name:     "movie search",
			req:      tmdb.NewMovieSearchRequest(lang, "matrix"),
			endpoint: tmdb.EndpointMovieSearch,
			path:     "/3/search/movie",
			query:    map[string]string{"language": "en", "query": "matrix"},
		},
		{
			name:     "movie reviews",
			req:      tmdb.NewMovieReviewsRequest(lang, 603),
			endpoint: tmdb.EndpointMovieReviews,
			path:     "/3/movie/603/reviews",
			query:    map[string]string{"language": "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.endpoint, tt.req.Endpoint())
			assert.Equal(t, tt.path, tt.req.Path())

			q := tt.req.Query()
			assert.Len(t, q, len(tt.query))
			for k, v := range tt.query {
				assert.Equal(t, v, q.Get(k), "query param %s", k)
			}
			assert.Empty(t, q.Get("api_key"))
		})
	}
}

func TestRequest_QueryIsACopy(t *testing.T) {
	req := tmdb.NewTrendingRequest("en")

	q := req.Query()
	q.Set("language", "fr")
	q.Set("page", "2")

	assert.Equal(t, "en", req.Query().Get("language"))
	assert.Empty(t, req.Query().Get("page"))
}

func TestRequest_Key(t *testing.T) {
	a := tmdb.NewMovieDetailsRequest("en", 603)
	b := tmdb.NewMovieDetailsRequest("en", 603)
	c := tmdb.NewMovieDetailsRequest("fr", 603)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestParseLanguage(t *testing.T) {
	for _, raw := range []string{"en", "fr", "en-US", "pt-BR"} {
		lang, err := tmdb.ParseLanguage(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, lang.String())
	}
	for _, raw := range []string{"", "e", "EN", "english", "en_US", "en-us", "en-USA", "../"} {
		_, err := tmdb.ParseLanguage(raw)
		assert.ErrorIs(t, err, tmdb.ErrInvalidLanguage, raw)
		assert.True(t, tmdb.IsInvalidInput(err))
	}
}

func TestParseMovieID(t *testing.T) {
	id, err := tmdb.ParseMovieID("603")
	require.NoError(t, err)
	assert.Equal(t, tmdb.MovieID(603), id)

	for _, raw := range []string{"", "0", "-1", "abc", "603abc", "1.5"} {
		_, err := tmdb.ParseMovieID(raw)
		assert.ErrorIs(t, err, tmdb.ErrInvalidMovieID, raw)
	}
}

func TestParseSearchQuery(t *testing.T) {
	q, err := tmdb.ParseSearchQuery("  the matrix ")
	require.NoError(t, err)
	assert.Equal(t, "the matrix", q.String())

	_, err = tmdb.ParseSearchQuery("   ")
	assert.ErrorIs(t, err, tmdb.ErrMissingQuery)
}

func TestUpstreamError(t *testing.T) {
	var err error = &tmdb.UpstreamError{HTTPStatus: 404, StatusCode: 34, Message: "The resource you requested could not be found."}

	var upErr *tmdb.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.True(t, upErr.NotFound())
	assert.Contains(t, err.Error(), "status_code 34")
	assert.False(t, tmdb.IsInvalidInput(err))
}
