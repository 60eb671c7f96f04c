package dependency_container

import (
	"fmt"

	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/config"
	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	handlers "github.com/NeuralTrust/ReelGate/pkg/handlers/http"
	"github.com/NeuralTrust/ReelGate/pkg/infra/httpx"
	"github.com/NeuralTrust/ReelGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/ReelGate/pkg/infra/tmdb"
	"github.com/NeuralTrust/ReelGate/pkg/middleware"
	"github.com/NeuralTrust/ReelGate/pkg/server/router"
	"github.com/NeuralTrust/ReelGate/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const tmdbBreakerName = "tmdb"

type Container struct {
	HTTPClient          httpx.Client
	CircuitBreaker      httpx.CircuitBreaker
	TMDbClient          domain.Client
	MovieService        movie.Service
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
	ProxyRouter         router.ServerRouter
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	userAgent := cfg.TMDb.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.TMDb.Timeout),
		httpx.WithUserAgent(userAgent),
	)

	var breaker httpx.CircuitBreaker
	if cfg.CircuitBreaker.Enabled {
		breaker = httpx.NewCircuitBreaker(
			tmdbBreakerName,
			cfg.CircuitBreaker.Timeout,
			cfg.CircuitBreaker.MaxFailures,
			httpx.WithSuccessClassifier(tmdb.BreakerSuccess),
			httpx.WithStateChangeHook(breakerStateHook(logger)),
		)
		prometheus.CircuitBreakerState.WithLabelValues(tmdbBreakerName).Set(float64(gobreaker.StateClosed))
	} else {
		breaker = httpx.NewNoopCircuitBreaker()
	}

	tmdbClient, err := tmdb.NewClient(tmdb.Config{
		BaseURL: cfg.TMDb.BaseURL,
		APIKey:  cfg.TMDb.APIKey,
		Timeout: cfg.TMDb.Timeout,
	}, httpClient, breaker, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	movieService := movie.NewService(logger, tmdbClient, movie.WithRegion(cfg.TMDb.Region))

	handlerTransport := handlers.HandlerTransport{
		TrendingHandler:            handlers.NewTrendingHandler(logger, movieService),
		TopRatedRecommendedHandler: handlers.NewTopRatedRecommendedHandler(logger, movieService),
		MovieDetailsHandler:        handlers.NewMovieDetailsHandler(logger, movieService),
		MovieAutocompleteHandler:   handlers.NewMovieAutocompleteHandler(logger, movieService),
		ReviewsHandler:             handlers.NewReviewsHandler(logger, movieService),
		GetVersionHandler:          handlers.NewGetVersionHandler(logger),
		HealthHandler:              handlers.NewHealthHandler(),
	}

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			cfg.Server.CORS.AllowOrigins,
			[]string{"GET", "HEAD", "OPTIONS"},
			cfg.Server.CORS.AllowCredentials,
			[]string{"X-Request-Id"},
			cfg.Server.CORS.MaxAge,
		),
	}
	if cfg.Metrics.Enabled {
		middlewareTransport.MetricsMiddleware = middleware.NewMetricsMiddleware(logger)
	}

	proxyRouter := router.NewProxyRouter(logger, middlewareTransport, handlerTransport, router.ProxyRouterConfig{
		StaticDir: cfg.Server.StaticDir,
	})

	return &Container{
		HTTPClient:          httpClient,
		CircuitBreaker:      breaker,
		TMDbClient:          tmdbClient,
		MovieService:        movieService,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
		ProxyRouter:         proxyRouter,
	}, nil
}

func breakerStateHook(logger *logrus.Logger) func(name string, from, to gobreaker.State) {
	return func(name string, from, to gobreaker.State) {
		prometheus.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		entry := logger.WithFields(logrus.Fields{
			"breaker": name,
			"from":    from.String(),
			"to":      to.String(),
		})
		if to == gobreaker.StateOpen {
			entry.Warn("circuit breaker opened, tmdb calls are short-circuited")
			return
		}
		entry.Info("circuit breaker state changed")
	}
}
