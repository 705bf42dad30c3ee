package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Owner {
	t.Helper()

	suffix := uniqueSuffix()
	owner := domain.Owner{
		ID:    uuid.New(),
		Email: "claimant-" + suffix + "@example.com",
		Name:  "Claimant " + suffix,
		Role:  role,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)`,
		owner.ID, owner.Email, owner.Name, string(owner.Role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return owner
}

// SeedClaim inserts a pending, unscreened claim for ownerID and returns its ID.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, description string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO claims (owner_id, description) VALUES ($1, $2) RETURNING id`,
		ownerID, description,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}

	return id
}
