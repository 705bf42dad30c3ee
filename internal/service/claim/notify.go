package claim

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// Notifications are best effort: every failure, including the owner lookup
// that feeds it, is logged and counted here and never returned.

func (s *Service) notifySubmitted(ctx context.Context, claim domain.Claim) {
	owner := s.lookupOwner(ctx, claim, domain.NotificationSubmitted)
	if err := s.notifier.SendSubmitted(ctx, claim, owner); err != nil {
		s.notificationFailed(ctx, claim, domain.NotificationSubmitted, err)
	}
}

func (s *Service) notifyStatusChanged(ctx context.Context, claim domain.Claim, prev, next domain.ClaimStatus, remarks *string) {
	owner := s.lookupOwner(ctx, claim, domain.NotificationStatusChanged)
	if err := s.notifier.SendStatusChanged(ctx, claim, owner, prev, next, remarks); err != nil {
		s.notificationFailed(ctx, claim, domain.NotificationStatusChanged, err)
	}
}

func (s *Service) notifyProcessed(ctx context.Context, claim domain.Claim, verdict string) {
	owner := s.lookupOwner(ctx, claim, domain.NotificationProcessed)
	if err := s.notifier.SendProcessed(ctx, claim, owner, verdict); err != nil {
		s.notificationFailed(ctx, claim, domain.NotificationProcessed, err)
	}
}

// lookupOwner resolves the claim owner for notification content. A failed
// lookup yields nil and the notification goes out without profile fields.
func (s *Service) lookupOwner(ctx context.Context, claim domain.Claim, event domain.NotificationEvent) *domain.Owner {
	owner, err := s.owners.FindOwner(ctx, claim.OwnerID)
	if err != nil {
		s.notificationFailed(ctx, claim, event, err)
		return nil
	}
	return owner
}

func (s *Service) notificationFailed(ctx context.Context, claim domain.Claim, event domain.NotificationEvent, err error) {
	s.metrics.NotificationFailed(event)
	s.log.WarnContext(ctx, "claim notification failed",
		slog.String("claim_id", claim.ID.String()),
		slog.String("owner_id", claim.OwnerID.String()),
		slog.String("event", event.String()),
		slog.String("error", err.Error()),
	)
}
