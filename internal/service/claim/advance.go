package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// AdvanceClaim moves a pending claim towards a verdict.
//
// An unscreened claim is screened first; a screening failure fails the call.
// A fraudulent claim is returned as is and the oracle is not consulted.
// Otherwise the oracle's raw verdict is recorded and mapped to a status;
// unrecognized verdicts keep the claim pending. An oracle failure leaves the
// stored claim untouched.
func (s *Service) AdvanceClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.Status.IsTerminal() {
		return nil, fmt.Errorf("advance claim %s in status %s: %w", claimID, claim.Status, domain.ErrInvalidState)
	}

	if !claim.FraudCheckCompleted {
		if _, err := s.RunFraudScreening(ctx, claimID); err != nil {
			return nil, err
		}
		claim, err = s.claims.GetByID(ctx, claimID)
		if err != nil {
			return nil, fmt.Errorf("reload claim: %w", err)
		}
	}

	if claim.IsFraudulent {
		s.log.InfoContext(ctx, "claim flagged as fraudulent; verdict skipped",
			slog.String("claim_id", claimID.String()),
		)
		return claim, nil
	}
	if claim.Status.IsTerminal() {
		return nil, fmt.Errorf("advance claim %s in status %s: %w", claimID, claim.Status, domain.ErrInvalidState)
	}

	raw, err := s.oracle.VerifyClaim(ctx, claim.ID, claim.Description)
	if err != nil {
		s.metrics.OracleCall(outcomeFailure)
		s.log.WarnContext(ctx, "verdict oracle failed",
			slog.String("claim_id", claimID.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.NewCollaboratorError(domain.CollaboratorVerdictOracle, err)
	}
	s.metrics.OracleCall(outcomeSuccess)

	prev := claim.Status
	if err := claim.ApplyVerdict(raw, s.now()); err != nil {
		return nil, fmt.Errorf("advance claim %s: %w", claimID, err)
	}

	updated, err := s.claims.Update(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("update claim: %w", err)
	}
	s.recordTransition(prev, updated.Status)

	s.log.InfoContext(ctx, "claim advanced",
		slog.String("claim_id", claimID.String()),
		slog.String("verdict", raw),
		slog.String("status", updated.Status.String()),
	)

	s.notifyProcessed(ctx, *updated, raw)

	return updated, nil
}

// ProcessClaim advances a claim on behalf of its owner or an admin.
func (s *Service) ProcessClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	if _, err := s.authorizeClaim(ctx, claimID); err != nil {
		return nil, err
	}
	return s.AdvanceClaim(ctx, claimID)
}
