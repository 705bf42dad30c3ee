package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

var errEmptyScreening = errors.New("screener returned no result")

// RunFraudScreening screens a claim at most once.
//
// Concurrent calls for the same claim id inside this process share one
// screening: the screener is called once and every caller receives the same
// outcome. Calls from other processes are not coordinated and may still
// screen a claim twice; the last write wins.
//
// The work runs on a context detached from the caller's cancellation, so a
// caller that gives up never cuts the persistence write short.
func (s *Service) RunFraudScreening(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	v, err, shared := s.screening.Do(claimID.String(), func() (any, error) {
		return s.screen(context.WithoutCancel(ctx), claimID)
	})
	if shared {
		s.log.DebugContext(ctx, "fraud screening shared with concurrent caller",
			slog.String("claim_id", claimID.String()),
		)
	}
	if err != nil {
		return nil, err
	}

	c := *v.(*domain.Claim)
	return &c, nil
}

// ScheduleFraudScreening queues RunFraudScreening on the background worker.
// Nothing is returned: screening failures are logged by the worker, and a
// rejected submission leaves the claim unscreened until AdvanceClaim screens
// it synchronously.
func (s *Service) ScheduleFraudScreening(ctx context.Context, claimID uuid.UUID) {
	err := s.queue.Submit("fraud_screening:"+claimID.String(), func(ctx context.Context) error {
		_, err := s.RunFraudScreening(ctx, claimID)
		return err
	})
	if err != nil {
		s.log.WarnContext(ctx, "fraud screening not scheduled",
			slog.String("claim_id", claimID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) screen(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}

	if claim.FraudCheckCompleted {
		s.metrics.FraudScreening(outcomeSkipped, 0)
		s.log.InfoContext(ctx, "fraud screening skipped: already completed",
			slog.String("claim_id", claimID.String()),
		)
		return claim, nil
	}

	prev := claim.Status

	callCtx, cancel := context.WithTimeout(ctx, screeningTimeout)
	start := time.Now()
	result, detectErr := s.screener.DetectFraud(callCtx, *claim)
	elapsed := time.Since(start)
	cancel()

	if detectErr == nil {
		detectErr = checkFraudResult(result)
	}

	if detectErr != nil {
		s.metrics.FraudScreening(outcomeFailure, elapsed)

		// Completed even on failure so the claim is never screened again.
		claim.FraudCheckCompleted = true
		if _, err := s.claims.Update(ctx, claim); err != nil {
			s.log.ErrorContext(ctx, "persist failed fraud screening",
				slog.String("claim_id", claimID.String()),
				slog.String("error", err.Error()),
			)
			return nil, errors.Join(
				domain.NewCollaboratorError(domain.CollaboratorFraudScreener, detectErr),
				fmt.Errorf("update claim: %w", err),
			)
		}

		s.log.WarnContext(ctx, "fraud screening failed; claim marked screened",
			slog.String("claim_id", claimID.String()),
			slog.String("error", detectErr.Error()),
		)
		return nil, domain.NewCollaboratorError(domain.CollaboratorFraudScreener, detectErr)
	}

	claim.ApplyFraudResult(*result)

	updated, err := s.claims.Update(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("update claim: %w", err)
	}

	outcome := outcomeClean
	if updated.IsFraudulent {
		outcome = outcomeFlagged
	}
	s.metrics.FraudScreening(outcome, elapsed)
	s.recordTransition(prev, updated.Status)

	s.log.InfoContext(ctx, "fraud screening completed",
		slog.String("claim_id", claimID.String()),
		slog.Bool("fraudulent", updated.IsFraudulent),
		slog.Float64("confidence", result.ConfidenceScore),
		slog.String("model_version", result.ModelVersion),
		slog.Duration("elapsed", elapsed),
	)

	return updated, nil
}

func checkFraudResult(res *domain.FraudResult) error {
	if res == nil {
		return errEmptyScreening
	}
	// Written as a positive range test so NaN is rejected too.
	if !(res.ConfidenceScore >= 0 && res.ConfidenceScore <= 1) {
		return fmt.Errorf("confidence score %v out of range [0,1]", res.ConfidenceScore)
	}
	return nil
}
