package dependency_container

import (
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/ReelGate/pkg/config"
	"github.com/NeuralTrust/ReelGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 6000},
		TMDb: config.TMDbConfig{
			BaseURL: "https://api.themoviedb.org",
			APIKey:  "key",
			Region:  "gb",
			Timeout: time.Second,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:     true,
			MaxFailures: 3,
			Timeout:     time.Second,
		},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(ContainerDI{Cfg: testConfig(), Logger: testLogger()})
	require.NoError(t, err)

	assert.NotNil(t, c.TMDbClient)
	assert.NotNil(t, c.MovieService)
	assert.NotNil(t, c.HandlerTransport.MovieDetailsHandler)
	assert.Nil(t, c.MiddlewareTransport.MetricsMiddleware)
	assert.Equal(t, gobreaker.StateClosed, c.CircuitBreaker.State())
	assert.NoError(t, c.ProxyRouter.BuildRoutes(fiber.New()))
}

func TestNewContainer_InvalidBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.TMDb.BaseURL = "not a url"

	_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: testLogger()})
	assert.Error(t, err)
}

func TestNewContainer_MetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.CircuitBreaker.Enabled = false

	c, err := NewContainer(ContainerDI{Cfg: cfg, Logger: testLogger()})
	require.NoError(t, err)
	assert.NotNil(t, c.MiddlewareTransport.MetricsMiddleware)
	assert.NoError(t, c.CircuitBreaker.Execute(func() error { return nil }))
}

func TestBreakerStateHook(t *testing.T) {
	hook := breakerStateHook(testLogger())

	hook("tmdb-hook-test", gobreaker.StateClosed, gobreaker.StateOpen)
	assert.Equal(t, float64(gobreaker.StateOpen), testutil.ToFloat64(prometheus.CircuitBreakerState.WithLabelValues("tmdb-hook-test")))

	hook("tmdb-hook-test", gobreaker.StateOpen, gobreaker.StateHalfOpen)
	assert.Equal(t, float64(gobreaker.StateHalfOpen), testutil.ToFloat64(prometheus.CircuitBreakerState.WithLabelValues("tmdb-hook-test")))
}
