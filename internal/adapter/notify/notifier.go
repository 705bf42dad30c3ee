// Package notify delivers claim lifecycle notifications. Delivery is best
// effort: callers log failures and carry on.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// sender delivers a fully built notification.
type sender interface {
	send(ctx context.Context, n domain.Notification) error
}

// notifier turns the three lifecycle calls into notifications for a sender.
type notifier struct {
	s   sender
	now func() time.Time
}

func (n notifier) SendSubmitted(ctx context.Context, claim domain.Claim, owner *domain.Owner) error {
	return n.s.send(ctx, domain.NewNotification(domain.NotificationSubmitted, claim, owner, n.now()))
}

func (n notifier) SendStatusChanged(
	ctx context.Context, claim domain.Claim, owner *domain.Owner,
	prev, next domain.ClaimStatus, remarks *string,
) error {
	msg := domain.NewNotification(domain.NotificationStatusChanged, claim, owner, n.now())
	msg.PreviousStatus = &prev
	msg.Status = next
	msg.Remarks = remarks
	return n.s.send(ctx, msg)
}

func (n notifier) SendProcessed(ctx context.Context, claim domain.Claim, owner *domain.Owner, verdict string) error {
	msg := domain.NewNotification(domain.NotificationProcessed, claim, owner, n.now())
	msg.Verdict = &verdict
	return n.s.send(ctx, msg)
}

func utcNow() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Log notifier
// ---------------------------------------------------------------------------

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	notifier
}

type logSender struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs every notification at info level.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{notifier{
		s:   logSender{log: logger.With("adapter", "notify_log")},
		now: utcNow,
	}}
}

func (l logSender) send(ctx context.Context, n domain.Notification) error {
	attrs := []any{
		slog.String("event", n.Event.String()),
		slog.String("claim_id", n.ClaimID.String()),
		slog.String("owner_id", n.OwnerID.String()),
		slog.String("status", n.Status.String()),
	}
	if n.OwnerEmail != "" {
		attrs = append(attrs, slog.String("owner_email", n.OwnerEmail))
	}
	if n.PreviousStatus != nil {
		attrs = append(attrs, slog.String("previous_status", n.PreviousStatus.String()))
	}
	if n.Remarks != nil {
		attrs = append(attrs, slog.String("remarks", *n.Remarks))
	}
	if n.Verdict != nil {
		attrs = append(attrs, slog.String("verdict", *n.Verdict))
	}
	l.log.InfoContext(ctx, "claim notification", attrs...)
	return nil
}
