package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	"github.com/heartmarshall/claims-backend/pkg/ctxutil"
)

// GetClaim returns a claim with its owner profile resolved. Only the owner
// and admins may read it. A failed owner lookup is logged and leaves Owner nil.
func (s *Service) GetClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	claim, err := s.authorizeClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}

	owner, err := s.owners.FindOwner(ctx, claim.OwnerID)
	if err != nil {
		s.log.WarnContext(ctx, "owner lookup failed",
			slog.String("claim_id", claimID.String()),
			slog.String("owner_id", claim.OwnerID.String()),
			slog.String("error", err.Error()),
		)
	}
	claim.Owner = owner

	return claim, nil
}

// ListMyClaims returns the caller's claims, newest first.
func (s *Service) ListMyClaims(ctx context.Context) ([]domain.Claim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claims, err := s.claims.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list claims by owner: %w", err)
	}
	return claims, nil
}

// ListClaims returns claims matching the filter. Admin only.
func (s *Service) ListClaims(ctx context.Context, input ListClaimsInput) ([]domain.Claim, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.claims.ListAll(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}

// DeleteClaim removes a claim owned by the caller, or any claim for admins.
func (s *Service) DeleteClaim(ctx context.Context, claimID uuid.UUID) error {
	claim, err := s.authorizeClaim(ctx, claimID)
	if err != nil {
		return err
	}

	if err := s.claims.Delete(ctx, claim.ID); err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}

	s.log.InfoContext(ctx, "claim deleted",
		slog.String("claim_id", claimID.String()),
		slog.String("owner_id", claim.OwnerID.String()),
	)
	return nil
}
