package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// pgCodeErrors maps PostgreSQL SQLSTATE codes to domain errors.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: owner is gone
	"23514": domain.ErrValidation,    // check_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError wraps err with the entity and id and converts pgx errors to
// domain errors. Context cancellation and deadlines pass through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
				target = mapped
			}
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, target)
}
