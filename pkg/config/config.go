package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Log            LogConfig            `mapstructure:"log"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
	TMDb           TMDbConfig           `mapstructure:"tmdb"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type ServerConfig struct {
	Host        string     `mapstructure:"host"`
	Port        int        `mapstructure:"port"`
	MetricsPort int        `mapstructure:"metrics_port"`
	StaticDir   string     `mapstructure:"static_dir"`
	CORS        CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           string   `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnableUpstream bool `mapstructure:"enable_upstream"`
}

type TMDbConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Region    string        `mapstructure:"region"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type CircuitBreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

var globalConfig Config

// Load reads config.yaml from configPath (then ./config and .) into the
// global configuration. A missing file is not an error: defaults and
// environment variables still apply.
func Load(configPath string) error {
	cfg, err := loadConfigFile(configPath, "config")
	if err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func loadConfigFile(configPath, fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaultValues(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaultValues registers every key so AutomaticEnv can override keys that
// are absent from the file.
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 6000)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.static_dir", "client/build")
	v.SetDefault("server.cors.allow_origins", []string{})
	v.SetDefault("server.cors.allow_credentials", false)
	v.SetDefault("server.cors.max_age", "600")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/proxy.log")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_upstream", true)

	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org")
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.region", "gb")
	v.SetDefault("tmdb.timeout", 10*time.Second)
	v.SetDefault("tmdb.user_agent", "ReelGate")

	v.SetDefault("circuit_breaker.enabled", true)
	v.SetDefault("circuit_breaker.max_failures", 5)
	v.SetDefault("circuit_breaker.timeout", 30*time.Second)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.TMDb.BaseURL == "" {
		return errors.New("tmdb.base_url must not be empty")
	}
	if c.TMDb.Timeout <= 0 {
		return fmt.Errorf("invalid tmdb.timeout %s", c.TMDb.Timeout)
	}
	if c.CircuitBreaker.Enabled && c.CircuitBreaker.MaxFailures == 0 {
		return errors.New("circuit_breaker.max_failures must be positive when the breaker is enabled")
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
