// Command rescreen runs fraud screening on claims that were never screened,
// typically after background tasks were dropped. It is intended to be invoked
// by an external cron job.
//
// Usage:
//
//	rescreen [--limit=100]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	"github.com/heartmarshall/claims-backend/internal/app"
	"github.com/heartmarshall/claims-backend/internal/config"
)

func main() {
	limit := flag.Int("limit", 100, "maximum number of claims to screen")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	os.Exit(run(cfg, logger, *limit, *timeout))
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run(cfg *config.Config, logger *slog.Logger, limit int, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	svc, stop, err := app.NewClaimService(cfg, logger, pool)
	if err != nil {
		logger.Error("build claim service", slog.String("error", err.Error()))
		return 1
	}
	defer stop()

	report, err := svc.RescreenUnscreened(ctx, limit)
	if err != nil {
		logger.Error("rescreen failed",
			slog.String("error", err.Error()),
			slog.Int("screened", report.Flagged+report.Clean),
		)
		return 1
	}

	logger.Info("rescreen completed",
		slog.Int("found", report.Found),
		slog.Int("flagged", report.Flagged),
		slog.Int("clean", report.Clean),
		slog.Int("failed", report.Failed),
	)
	return 0
}
