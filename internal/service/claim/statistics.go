package claim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// GetStatistics returns aggregate claim counts. Admin only.
//
// Each counter is its own COUNT query, run in parallel; see
// domain.ClaimStatistics for the consistency this gives.
func (s *Service) GetStatistics(ctx context.Context) (*domain.ClaimStatistics, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	pending := domain.ClaimStatusPending
	approved := domain.ClaimStatusApproved
	rejected := domain.ClaimStatusRejected
	flagged := domain.ClaimStatusFlagged
	yes := true

	var stats domain.ClaimStatistics
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int, filter domain.ClaimFilter) {
		g.Go(func() error {
			n, err := s.claims.Count(gctx, filter)
			if err != nil {
				return fmt.Errorf("count %s claims: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	count("all", &stats.Total, domain.ClaimFilter{})
	count("pending", &stats.Pending, domain.ClaimFilter{Status: &pending})
	count("approved", &stats.Approved, domain.ClaimFilter{Status: &approved})
	count("rejected", &stats.Rejected, domain.ClaimFilter{Status: &rejected})
	count("flagged", &stats.Flagged, domain.ClaimFilter{Status: &flagged})
	count("fraudulent", &stats.Fraudulent, domain.ClaimFilter{IsFraudulent: &yes})
	count("screened", &stats.Screened, domain.ClaimFilter{FraudCheckCompleted: &yes})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.ScreeningPending = stats.Total - stats.Screened
	return &stats, nil
}
