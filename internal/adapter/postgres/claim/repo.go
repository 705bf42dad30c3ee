// Package claim implements the claim store using PostgreSQL.
// Queries are built with squirrel; fraud detection and verdict records are
// stored as JSONB.
package claim

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	"github.com/heartmarshall/claims-backend/internal/domain"
)

const tableClaims = "claims"

var columns = []string{
	"id",
	"owner_id",
	"description",
	"status",
	"fraud_check_completed",
	"is_fraudulent",
	"fraud_confidence_score",
	"fraud_detection",
	"verdict",
	"created_at",
	"updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new claim repository. db is usually a *pgxpool.Pool; a
// transaction in ctx takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a claim by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	query, args, err := psql.Select(columns...).
		From(tableClaims).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get claim query: %w", err)
	}

	return r.getOne(ctx, "claim", id, query, args)
}

// GetByIDForUpdate returns a claim and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	query, args, err := psql.Select(columns...).
		From(tableClaims).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get claim for update query: %w", err)
	}

	return r.getOne(ctx, "claim", id, query, args)
}

// ListByOwner returns all claims of one owner, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Claim, error) {
	return r.ListAll(ctx, domain.ClaimFilter{OwnerID: &ownerID})
}

// ListAll returns claims matching the filter, newest first.
func (r *Repo) ListAll(ctx context.Context, filter domain.ClaimFilter) ([]domain.Claim, error) {
	b := psql.Select(columns...).
		From(tableClaims).
		OrderBy("created_at DESC", "id")
	if pred := filterPredicate(filter); len(pred) > 0 {
		b = b.Where(pred)
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list claims query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	claims := make([]domain.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	return claims, nil
}

// Count returns the number of claims matching the filter. Limit and Offset
// are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.ClaimFilter) (int, error) {
	b := psql.Select("COUNT(*)").From(tableClaims)
	if pred := filterPredicate(filter); len(pred) > 0 {
		b = b.Where(pred)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count claims query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}

	return int(n), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new claim. The store assigns ID, CreatedAt and UpdatedAt.
// Returns domain.ErrNotFound if the owner does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	detection, verdict, err := marshalRecords(c)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(tableClaims).
		Columns(
			"owner_id", "description", "status",
			"fraud_check_completed", "is_fraudulent", "fraud_confidence_score",
			"fraud_detection", "verdict",
		).
		Values(
			c.OwnerID, c.Description, string(c.Status),
			c.FraudCheckCompleted, c.IsFraudulent, c.FraudConfidenceScore,
			detection, verdict,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert claim query: %w", err)
	}

	return r.getOne(ctx, "claim_owner", c.OwnerID, query, args)
}

// Update overwrites every mutable column of the claim and bumps updated_at.
// Returns domain.ErrNotFound if the claim does not exist.
func (r *Repo) Update(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	detection, verdict, err := marshalRecords(c)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Update(tableClaims).
		Set("description", c.Description).
		Set("status", string(c.Status)).
		Set("fraud_check_completed", c.FraudCheckCompleted).
		Set("is_fraudulent", c.IsFraudulent).
		Set("fraud_confidence_score", c.FraudConfidenceScore).
		Set("fraud_detection", detection).
		Set("verdict", verdict).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update claim query: %w", err)
	}

	return r.getOne(ctx, "claim", c.ID, query, args)
}

// Delete removes a claim. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(tableClaims).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete claim query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "claim", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "claim", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, entity string, id uuid.UUID, query string, args []any) (*domain.Claim, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	c, err := scanClaim(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func filterPredicate(f domain.ClaimFilter) sq.Eq {
	eq := sq.Eq{}
	if f.OwnerID != nil {
		eq["owner_id"] = *f.OwnerID
	}
	if f.Status != nil {
		eq["status"] = string(*f.Status)
	}
	if f.IsFraudulent != nil {
		eq["is_fraudulent"] = *f.IsFraudulent
	}
	if f.FraudCheckCompleted != nil {
		eq["fraud_check_completed"] = *f.FraudCheckCompleted
	}
	return eq
}

// marshalRecords encodes the JSONB columns. A nil record is stored as SQL NULL.
func marshalRecords(c *domain.Claim) (detection, verdict any, err error) {
	if c.FraudDetection != nil {
		b, err := json.Marshal(c.FraudDetection)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal fraud detection: %w", err)
		}
		detection = b
	}
	if c.Verdict != nil {
		b, err := json.Marshal(c.Verdict)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal verdict: %w", err)
		}
		verdict = b
	}
	return detection, verdict, nil
}

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var (
		c         domain.Claim
		status    string
		score     *float64
		detection []byte
		verdict   []byte
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Description,
		&status,
		&c.FraudCheckCompleted,
		&c.IsFraudulent,
		&score,
		&detection,
		&verdict,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.ClaimStatus(status)
	c.FraudConfidenceScore = score
	c.CreatedAt = createdAt.UTC()
	c.UpdatedAt = updatedAt.UTC()

	if len(detection) > 0 {
		var fd domain.FraudDetection
		if err := json.Unmarshal(detection, &fd); err != nil {
			return nil, fmt.Errorf("unmarshal fraud detection: %w", err)
		}
		c.FraudDetection = &fd
	}
	if len(verdict) > 0 {
		var v domain.Verdict
		if err := json.Unmarshal(verdict, &v); err != nil {
			return nil, fmt.Errorf("unmarshal verdict: %w", err)
		}
		c.Verdict = &v
	}

	return &c, nil
}
