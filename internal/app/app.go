package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tweetsight/backend/internal/adapter/fetcher"
	"github.com/tweetsight/backend/internal/adapter/postgres"
	queryrepo "github.com/tweetsight/backend/internal/adapter/postgres/query"
	tweetrepo "github.com/tweetsight/backend/internal/adapter/postgres/tweet"
	"github.com/tweetsight/backend/internal/adapter/textstats"
	"github.com/tweetsight/backend/internal/auth"
	"github.com/tweetsight/backend/internal/config"
	"github.com/tweetsight/backend/internal/dispatch"
	"github.com/tweetsight/backend/internal/reconcile"
	"github.com/tweetsight/backend/internal/registry"
	queryservice "github.com/tweetsight/backend/internal/service/query"
	"github.com/tweetsight/backend/internal/service/results"
	"github.com/tweetsight/backend/internal/transport/middleware"
	"github.com/tweetsight/backend/internal/transport/rest"
)

const accessTokenTTL = 15 * time.Minute

// Run is the application entry point. It loads configuration, wires the
// adapters, services and transport together, starts the HTTP server and
// blocks until ctx is cancelled, then shuts everything down in reverse
// order.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	queries := queryrepo.New(pool)
	tweets := tweetrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jobs := registry.New()
	fetch := fetcher.New(cfg.Fetcher, tweets, txManager, logger)
	dispatcher := dispatch.NewPool(logger, fetch.Fetch, cfg.Dispatch.Workers, cfg.Dispatch.QueueSize)

	querySvc := queryservice.NewService(logger, queries, jobs, dispatcher)
	resultsSvc := results.NewService(logger, queries, tweets, jobs, textstats.NewCounter())

	var sweeper *reconcile.Sweeper
	if cfg.Sweep.Enabled {
		sweeper = reconcile.NewSweeper(logger, jobs, dispatcher, cfg.Sweep.Schedule)
		if err := sweeper.Start(); err != nil {
			return fmt.Errorf("start sweeper: %w", err)
		}
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, accessTokenTTL)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewQueryHandler(querySvc, logger),
		rest.NewResultsHandler(resultsSvc, logger),
	)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(300),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if sweeper != nil {
		sweeper.Stop()
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		logger.Error("dispatcher shutdown", slog.String("error", err.Error()))
	}

	return nil
}
