// Command promote sets a user's role by email address. It is used to
// bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// The database is taken from the usual config (CONFIG_PATH or DATABASE_DSN).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	"github.com/heartmarshall/claims-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/claims-backend/internal/app"
	"github.com/heartmarshall/claims-backend/internal/config"
	"github.com/heartmarshall/claims-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign (user or admin)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	updated, err := user.New(pool).SetRoleByEmail(ctx, *email, domain.UserRole(*role))
	if errors.Is(err, domain.ErrNotFound) {
		logger.Error("no user with that email", slog.String("email", *email))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("update role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("role updated",
		slog.String("user_id", updated.ID.String()),
		slog.String("email", updated.Email),
		slog.String("role", string(updated.Role)),
	)
}
