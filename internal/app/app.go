package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/claims-backend/internal/adapter/metrics"
	"github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/claims-backend/internal/adapter/postgres/claim"
	userrepo "github.com/heartmarshall/claims-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/claims-backend/internal/auth"
	"github.com/heartmarshall/claims-backend/internal/config"
	"github.com/heartmarshall/claims-backend/internal/service/claim"
	"github.com/heartmarshall/claims-backend/internal/transport/middleware"
	"github.com/heartmarshall/claims-backend/internal/transport/rest"
	"github.com/heartmarshall/claims-backend/internal/worker"
)

const (
	// tokenTTL bounds tokens minted by this process; the server only validates.
	tokenTTL = time.Hour

	rateLimitCleanup = time.Minute
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the claim service and serves HTTP until ctx is cancelled,
// then shuts down the server, the worker pool and the database pool in order.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("fraud_mode", cfg.Fraud.Mode),
		slog.String("oracle_mode", cfg.Oracle.Mode),
		slog.String("notify_mode", cfg.Notify.Mode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	rec := metrics.New()
	rec.SetBuildInfo(Version, Commit)

	workers := worker.New(logger, worker.Config{
		Workers:     cfg.Worker.Workers,
		QueueSize:   cfg.Worker.QueueSize,
		TaskTimeout: cfg.Worker.TaskTimeout,
	}, rec)
	workers.Start()

	svc, err := newClaimService(cfg, logger, pool, workers, rec)
	if err != nil {
		shutdownWorkers(logger, workers, cfg.Server.ShutdownTimeout)
		return err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, tokenTTL)

	mux := http.NewServeMux()
	rest.NewClaimHandler(svc, logger).Register(mux)
	rest.NewHealthHandler(pool, svc, BuildVersion()).Register(mux)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, rec.Handler())
	}

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, rateLimitCleanup)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit())
	}
	mws = append(mws, middleware.Auth(jwtManager))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(rec.Instrument(mux)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		shutdownWorkers(logger, workers, cfg.Server.ShutdownTimeout)
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	shutdownWorkers(logger, workers, cfg.Server.ShutdownTimeout)

	logger.Info("application stopped")
	return nil
}

// NewClaimService wires a claim service against pool for command-line tools
// that run outside the HTTP server. Background tasks run on a single worker
// and metrics are recorded but not exposed. The returned func drains the
// worker pool.
func NewClaimService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*claim.Service, func(), error) {
	rec := metrics.New()
	workers := worker.New(logger, worker.Config{
		Workers:     1,
		QueueSize:   cfg.Worker.QueueSize,
		TaskTimeout: cfg.Worker.TaskTimeout,
	}, rec)
	workers.Start()

	svc, err := newClaimService(cfg, logger, pool, workers, rec)
	stop := func() { shutdownWorkers(logger, workers, cfg.Server.ShutdownTimeout) }
	if err != nil {
		stop()
		return nil, nil, err
	}
	return svc, stop, nil
}

func newClaimService(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	workers *worker.Pool,
	rec *metrics.Recorder,
) (*claim.Service, error) {
	screener, err := newFraudScreener(cfg.Fraud, logger)
	if err != nil {
		return nil, err
	}
	verdicts, err := newVerdictOracle(cfg.Oracle, logger)
	if err != nil {
		return nil, err
	}
	notifier, err := newNotifier(cfg.Notify, logger)
	if err != nil {
		return nil, err
	}

	return claim.NewService(
		logger,
		claimrepo.New(pool),
		postgres.NewTxManager(pool),
		screener,
		verdicts,
		notifier,
		userrepo.New(pool),
		workers,
		rec,
	), nil
}

func shutdownWorkers(logger *slog.Logger, workers *worker.Pool, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := workers.Shutdown(ctx); err != nil {
		logger.Error("worker pool shutdown", slog.String("error", err.Error()))
	}
}
