package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	handlers "github.com/NeuralTrust/ReelGate/pkg/handlers/http"
	"github.com/NeuralTrust/ReelGate/pkg/infra/httpx"
	"github.com/NeuralTrust/ReelGate/pkg/infra/tmdb"
	"github.com/NeuralTrust/ReelGate/pkg/middleware"
	"github.com/NeuralTrust/ReelGate/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path  string
	query map[string]string
}

// fakeTMDb answers like TMDb for the handful of paths the proxy uses and
// records every call it receives.
type fakeTMDb struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeTMDb) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := map[string]string{}
	for k := range r.URL.Query() {
		q[k] = r.URL.Query().Get(k)
	}
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{path: r.URL.Path, query: q})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	switch r.URL.Path {
	case "/3/trending/movie/day":
		_, _ = io.WriteString(w, `{"page":1,"results":[{"id":1,"original_language":"`+q["language"]+`"}]}`)
	case "/3/movie/top_rated":
		_, _ = io.WriteString(w, `{"page":1,"results":[{"id":278},{"id":238},{"id":240}]}`)
	case "/3/movie/603":
		_, _ = io.WriteString(w, `{"id":603,"title":"The Matrix","genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}],"videos":{"results":[]},"credits":{"cast":[],"crew":[]}}`)
	case "/3/movie/603/reviews":
		_, _ = io.WriteString(w, `{"id":603,"page":1,"results":[]}`)
	case "/3/search/movie":
		_, _ = io.WriteString(w, `{"page":1,"results":[{"id":603,"title":"The Matrix"}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`)
	}
}

func (f *fakeTMDb) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func setupApp(t *testing.T, staticDir string) (*fiber.App, *fakeTMDb) {
	t.Helper()
	fake := &fakeTMDb{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := tmdb.NewClient(tmdb.Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, httpx.NewFastHTTPClient(), nil, logger)
	require.NoError(t, err)
	service := movie.NewService(logger, client)

	r := router.NewProxyRouter(logger, middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(logger),
	}, handlers.HandlerTransport{
		TrendingHandler:            handlers.NewTrendingHandler(logger, service),
		TopRatedRecommendedHandler: handlers.NewTopRatedRecommendedHandler(logger, service),
		MovieDetailsHandler:        handlers.NewMovieDetailsHandler(logger, service),
		MovieAutocompleteHandler:   handlers.NewMovieAutocompleteHandler(logger, service),
		ReviewsHandler:             handlers.NewReviewsHandler(logger, service),
		GetVersionHandler:          handlers.NewGetVersionHandler(logger),
		HealthHandler:              handlers.NewHealthHandler(),
	}, router.ProxyRouterConfig{StaticDir: staticDir})

	app := fiber.New()
	require.NoError(t, r.BuildRoutes(app))
	return app, fake
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), 10000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestProxyRouter_MovieDetails(t *testing.T) {
	app, fake := setupApp(t, "")

	status, body := get(t, app, "/api/en/movieDetails/603")
	require.Equal(t, http.StatusOK, status)

	var got struct {
		ID     int `json:"id"`
		Genres []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"genres"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 603, got.ID)
	assert.NotEmpty(t, got.Genres)

	call := fake.last()
	assert.Equal(t, "/3/movie/603", call.path)
	assert.Equal(t, "videos,credits", call.query["append_to_response"])
	assert.Equal(t, "en", call.query["language"])
	assert.Equal(t, "test-key", call.query["api_key"])
}

func TestProxyRouter_Autocomplete(t *testing.T) {
	app, fake := setupApp(t, "")

	status, _ := get(t, app, "/api/en/movieAutocomplete?q=matrix")
	require.Equal(t, http.StatusOK, status)

	call := fake.last()
	assert.Equal(t, "/3/search/movie", call.path)
	assert.Equal(t, "matrix", call.query["query"])
	assert.Equal(t, "en", call.query["language"])
}

func TestProxyRouter_TopRatedReturnsSingleObject(t *testing.T) {
	app, fake := setupApp(t, "")

	status, body := get(t, app, "/api/en/topRatedRecommended")
	require.Equal(t, http.StatusOK, status)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Contains(t, []float64{278, 238, 240}, got["id"])
	assert.Equal(t, "gb", fake.last().query["region"])
}

func TestProxyRouter_TrendingForwardsEachLanguage(t *testing.T) {
	app, _ := setupApp(t, "")

	var wg sync.WaitGroup
	for _, lang := range []string{"en", "fr", "de", "es", "it", "ja", "ko", "pt"} {
		lang := lang
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body := get(t, app, "/api/"+lang+"/trending")
			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, string(body), `"original_language":"`+lang+`"`)
		}()
	}
	wg.Wait()
}

func TestProxyRouter_Errors(t *testing.T) {
	app, _ := setupApp(t, "")

	tests := []struct {
		target string
		status int
	}{
		{"/api/english/trending", http.StatusBadRequest},
		{"/api/en/movieDetails/abc", http.StatusBadRequest},
		{"/api/en/movieAutocomplete", http.StatusBadRequest},
		{"/api/en/movieDetails/999999999", http.StatusNotFound},
		{"/api/en/reviews/999999999", http.StatusNotFound},
	}
	for _, tt := range tests {
		status, body := get(t, app, tt.target)
		assert.Equal(t, tt.status, status, tt.target)
		assert.Contains(t, string(body), `"status_code"`, tt.target)
	}
}

func TestProxyRouter_ReviewsAndInfo(t *testing.T) {
	app, fake := setupApp(t, "")

	status, _ := get(t, app, "/api/pt-BR/reviews/603")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "/3/movie/603/reviews", fake.last().path)
	assert.Equal(t, "pt-BR", fake.last().query["language"])

	status, _ = get(t, app, "/health")
	assert.Equal(t, http.StatusOK, status)

	status, body := get(t, app, "/version")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "ReelGate")
}

func TestProxyRouter_StaticBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>reelgate</html>"), 0o600))

	app, _ := setupApp(t, dir)

	status, body := get(t, app, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "reelgate")

	status, _ = get(t, app, "/api/en/movieDetails/603")
	assert.Equal(t, http.StatusOK, status)
}

func TestProxyRouter_MissingHandler(t *testing.T) {
	r := router.NewProxyRouter(logrus.New(), middleware.Transport{}, handlers.HandlerTransport{}, router.ProxyRouterConfig{})
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), router.ErrMissingHandler)
}
