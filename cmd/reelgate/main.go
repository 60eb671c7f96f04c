package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/ReelGate/pkg/config"
	"github.com/NeuralTrust/ReelGate/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/ReelGate/pkg/infra/logger"
	"github.com/NeuralTrust/ReelGate/pkg/server"
	"github.com/NeuralTrust/ReelGate/pkg/server/router"
	"github.com/NeuralTrust/ReelGate/pkg/version"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	if err := config.Load("../../config"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	logger, closeLogs := infraLogger.NewLogger(infraLogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer closeLogs()

	logger.WithField("version", version.Version).Info("starting ReelGate")
	if cfg.TMDb.APIKey == "" {
		logger.Warn("TMDb API key not found, set TMDB_API_KEY; upstream calls will be rejected")
	} else {
		logger.Info("TMDb API key found")
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to build dependencies")
		closeLogs()
		os.Exit(1)
	}

	srv := server.NewProxyServer(server.ProxyServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{container.ProxyRouter},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down server")
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("server failed")
			closeLogs()
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}
