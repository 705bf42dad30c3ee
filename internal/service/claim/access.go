package claim

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	"github.com/heartmarshall/claims-backend/pkg/ctxutil"
)

// requireAdmin fails with ErrUnauthorized for anonymous callers and
// ErrForbidden for authenticated non-admins.
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// authorizeClaim loads a claim the caller owns or, for admins, any claim.
func (s *Service) authorizeClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}

	if !claim.IsOwnedBy(userID) && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return claim, nil
}
