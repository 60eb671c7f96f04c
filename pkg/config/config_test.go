package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, Load(t.TempDir()))
	cfg := GetConfig()

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "client/build", cfg.Server.StaticDir)
	assert.Empty(t, cfg.Server.CORS.AllowOrigins)
	assert.Equal(t, "logs/proxy.log", cfg.Log.File)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://api.themoviedb.org", cfg.TMDb.BaseURL)
	assert.Equal(t, "gb", cfg.TMDb.Region)
	assert.Equal(t, 10*time.Second, cfg.TMDb.Timeout)
	assert.True(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, uint32(5), cfg.CircuitBreaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.CircuitBreaker.Timeout)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 7000
  cors:
    allow_origins: ["http://localhost:3000"]
metrics:
  enabled: true
tmdb:
  region: us
  timeout: 3s
circuit_breaker:
  enabled: false
`)
	t.Setenv("TMDB_API_KEY", "secret-from-env")
	t.Setenv("SERVER_METRICS_PORT", "9191")

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 9191, cfg.Server.MetricsPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "secret-from-env", cfg.TMDb.APIKey)
	assert.Equal(t, "us", cfg.TMDb.Region)
	assert.Equal(t, 3*time.Second, cfg.TMDb.Timeout)
	assert.False(t, cfg.CircuitBreaker.Enabled)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := writeConfig(t, "server: [unclosed")
	assert.Error(t, Load(dir))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:         ServerConfig{Port: 6000},
			TMDb:           TMDbConfig{BaseURL: "https://api.themoviedb.org", Timeout: time.Second},
			CircuitBreaker: CircuitBreakerConfig{Enabled: true, MaxFailures: 5},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.TMDb.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.TMDb.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.CircuitBreaker.MaxFailures = 0
	assert.Error(t, cfg.Validate())

	cfg.CircuitBreaker.Enabled = false
	assert.NoError(t, cfg.Validate())
}
