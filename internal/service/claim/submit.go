package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/claims-backend/internal/domain"
	"github.com/heartmarshall/claims-backend/pkg/ctxutil"
)

// SubmitClaim creates a pending claim for the caller, notifies the owner and
// schedules fraud screening in the background.
func (s *Service) SubmitClaim(ctx context.Context, input SubmitClaimInput) (*domain.Claim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	claim, err := s.claims.Create(ctx, &domain.Claim{
		OwnerID:     userID,
		Description: strings.TrimSpace(input.Description),
		Status:      domain.ClaimStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}

	s.metrics.ClaimSubmitted()
	s.log.InfoContext(ctx, "claim submitted",
		slog.String("claim_id", claim.ID.String()),
		slog.String("owner_id", userID.String()),
	)

	s.notifySubmitted(ctx, *claim)
	s.ScheduleFraudScreening(ctx, claim.ID)

	return claim, nil
}
