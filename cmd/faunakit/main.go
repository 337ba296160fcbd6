// Command faunakit runs the REST gateway in front of the faunakit SDK.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/faunakit/faunakit"
	"github.com/faunakit/faunakit/internal/config"
	logpkg "github.com/faunakit/faunakit/internal/logger"
	"github.com/faunakit/faunakit/internal/metrics"
	chiTransport "github.com/faunakit/faunakit/internal/transport/chi"
	"github.com/faunakit/faunakit/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting faunakit gateway",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("fauna_endpoint", cfg.Fauna.Endpoint),
	)

	client, err := faunakit.New(cfg.Fauna.Secret,
		faunakit.WithEndpoint(cfg.Fauna.Endpoint),
		faunakit.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Fauna.QueryTimeoutSec) * time.Second,
		}),
		faunakit.WithDefaultPageSize(cfg.Pagination.DefaultPageSize),
		faunakit.WithLogger(logger),
		faunakit.WithMetrics(prometheus.DefaultRegisterer),
	)
	if err != nil {
		logger.Fatal("Failed to create SDK client", zap.Error(err))
	}

	server := chiTransport.NewServer(client, cfg.Pagination.MaxPageSize, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
