// Package user implements owner lookup and role management using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	"github.com/heartmarshall/claims-backend/internal/domain"
)

const (
	findOwnerSQL = `SELECT id, email, name, role FROM users WHERE id = $1`

	setRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE email = $1
RETURNING id, email, name, role`
)

// Repo provides access to user profiles.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindOwner returns the user profile with the given id, or nil and no error
// when no such user exists.
func (r *Repo) FindOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	var (
		o    domain.Owner
		role string
	)

	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, findOwnerSQL, id).
		Scan(&o.ID, &o.Email, &o.Name, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find owner %s: %w", id, err)
	}

	o.Role = domain.UserRole(role)
	return &o, nil
}

// SetRoleByEmail assigns role to the user with the given email and returns
// the updated profile. Returns domain.ErrNotFound if no user has that email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.Owner, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}

	var (
		o      domain.Owner
		stored string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, setRoleSQL, email, string(role)).
		Scan(&o.ID, &o.Email, &o.Name, &stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set role for %q: %w", email, err)
	}

	o.Role = domain.UserRole(stored)
	return &o, nil
}
