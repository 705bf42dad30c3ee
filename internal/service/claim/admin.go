package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	"github.com/heartmarshall/claims-backend/pkg/ctxutil"
)

// AdminUpdateClaim overwrites a claim's status and description, bypassing
// the state machine. It never runs screening or the oracle.
//
// FLAGGED can only be set on a claim with a positive fraud determination;
// any other status may be set on any claim. The rule is one-way: moving a
// fraudulent claim out of FLAGGED is allowed, so after such an override the
// claim keeps IsFraudulent while no longer being FLAGGED. The fraud fields
// are never rewritten here. The owner is notified when the status changes.
func (s *Service) AdminUpdateClaim(ctx context.Context, claimID uuid.UUID, input AdminUpdateInput) (*domain.Claim, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		prev    domain.ClaimStatus
		updated *domain.Claim
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		claim, err := s.claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}
		prev = claim.Status

		if input.Status != nil {
			if *input.Status == domain.ClaimStatusFlagged && !(claim.IsFraudulent && claim.FraudCheckCompleted) {
				return domain.NewValidationError("status", "FLAGGED requires a positive fraud determination")
			}
			claim.Status = *input.Status
		}
		if input.Description != nil {
			claim.Description = strings.TrimSpace(*input.Description)
		}

		updated, err = s.claims.Update(ctx, claim)
		if err != nil {
			return fmt.Errorf("update claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	adminID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "claim updated by admin",
		slog.String("claim_id", claimID.String()),
		slog.String("admin_id", adminID.String()),
		slog.String("previous_status", prev.String()),
		slog.String("status", updated.Status.String()),
	)

	if updated.Status != prev {
		s.recordTransition(prev, updated.Status)
		s.notifyStatusChanged(ctx, *updated, prev, updated.Status, input.Remarks)
	}

	return updated, nil
}

// TriggerFraudScreening runs fraud screening on demand. Admin only. A claim
// that was already screened is returned unchanged.
func (s *Service) TriggerFraudScreening(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.RunFraudScreening(ctx, claimID)
}
