package router

import (
	"fmt"
	"os"

	handlers "github.com/NeuralTrust/ReelGate/pkg/handlers/http"
	"github.com/NeuralTrust/ReelGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"
)

const DefaultSwaggerFile = "./docs/swagger.json"

const (
	HealthPath  = "/health"
	VersionPath = "/version"
	SwaggerPath = "/swagger.json"
	DocsPath    = "/docs/*"

	TrendingPath            = "/api/:lang/trending"
	TopRatedRecommendedPath = "/api/:lang/topRatedRecommended"
	MovieDetailsPath        = "/api/:lang/movieDetails/:tmdbId"
	MovieAutocompletePath   = "/api/:lang/movieAutocomplete"
	ReviewsPath             = "/api/:lang/reviews/:tmdbId"
)

type ProxyRouterConfig struct {
	// StaticDir holds the built client bundle served at "/". Empty disables it.
	StaticDir   string
	SwaggerFile string
}

type proxyRouter struct {
	logger              *logrus.Logger
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
	cfg                 ProxyRouterConfig
}

func NewProxyRouter(
	logger *logrus.Logger,
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	cfg ProxyRouterConfig,
) ServerRouter {
	if cfg.SwaggerFile == "" {
		cfg.SwaggerFile = DefaultSwaggerFile
	}
	return &proxyRouter{
		logger:              logger,
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		cfg:                 cfg,
	}
}

func (r *proxyRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	for name, handler := range map[string]handlers.Handler{
		"trending":            h.TrendingHandler,
		"topRatedRecommended": h.TopRatedRecommendedHandler,
		"movieDetails":        h.MovieDetailsHandler,
		"movieAutocomplete":   h.MovieAutocompleteHandler,
		"reviews":             h.ReviewsHandler,
		"version":             h.GetVersionHandler,
		"health":              h.HealthHandler,
	} {
		if handler == nil {
			return fmt.Errorf("%w: %s", ErrMissingHandler, name)
		}
	}

	for _, m := range []middleware.Middleware{
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.RequestIDMiddleware,
		r.middlewareTransport.CORSMiddleware,
		r.middlewareTransport.MetricsMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	router.Get(HealthPath, h.HealthHandler.Handle)
	router.Get(VersionPath, h.GetVersionHandler.Handle)

	router.Static(SwaggerPath, r.cfg.SwaggerFile)
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: SwaggerPath,
	}))

	router.Get(TrendingPath, h.TrendingHandler.Handle)
	router.Get(TopRatedRecommendedPath, h.TopRatedRecommendedHandler.Handle)
	router.Get(MovieDetailsPath, h.MovieDetailsHandler.Handle)
	router.Get(MovieAutocompletePath, h.MovieAutocompleteHandler.Handle)
	router.Get(ReviewsPath, h.ReviewsHandler.Handle)

	r.mountStatic(router)
	return nil
}

// mountStatic serves the client bundle. It is registered after the API so
// API routes always win.
func (r *proxyRouter) mountStatic(router *fiber.App) {
	if r.cfg.StaticDir == "" {
		return
	}
	if _, err := os.Stat(r.cfg.StaticDir); err != nil {
		r.logger.WithField("dir", r.cfg.StaticDir).WithError(err).Warn("client bundle not found, static files disabled")
		return
	}
	router.Static("/", r.cfg.StaticDir, fiber.Static{
		Index: "index.html",
	})
}
