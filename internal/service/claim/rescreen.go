package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// RescreenReport summarizes a RescreenUnscreened run.
type RescreenReport struct {
	Found   int
	Flagged int
	Clean   int
	Failed  int
}

// RescreenUnscreened runs fraud screening synchronously on up to limit claims
// that were never screened, for example after the background queue dropped
// tasks. Screener failures are counted, not returned; a store failure stops
// the run.
func (s *Service) RescreenUnscreened(ctx context.Context, limit int) (RescreenReport, error) {
	unscreened := false
	claims, err := s.claims.ListAll(ctx, domain.ClaimFilter{
		FraudCheckCompleted: &unscreened,
		Limit:               limit,
	})
	if err != nil {
		return RescreenReport{}, fmt.Errorf("list unscreened claims: %w", err)
	}

	report := RescreenReport{Found: len(claims)}
	for _, c := range claims {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		screened, err := s.RunFraudScreening(ctx, c.ID)
		switch {
		case errors.Is(err, domain.ErrCollaboratorFailure):
			report.Failed++
		case errors.Is(err, domain.ErrNotFound):
			// Deleted since listing.
		case err != nil:
			return report, err
		case screened.IsFraudulent:
			report.Flagged++
		default:
			report.Clean++
		}
	}

	s.log.InfoContext(ctx, "rescreen finished",
		slog.Int("found", report.Found),
		slog.Int("flagged", report.Flagged),
		slog.Int("clean", report.Clean),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
