package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// WebhookNotifier posts notifications as JSON to a fixed URL. It does not
// retry.
type WebhookNotifier struct {
	notifier
}

type webhookSender struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWebhookNotifier creates a WebhookNotifier posting to url.
func NewWebhookNotifier(url string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{notifier{
		s: webhookSender{
			url:        url,
			httpClient: &http.Client{Timeout: timeout},
			log:        logger.With("adapter", "notify_webhook"),
		},
		now: utcNow,
	}}
}

func (w webhookSender) send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("webhook: encode %s: %w", n.Event, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Claims-Event", n.Event.String())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: deliver %s: %w", n.Event, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: deliver %s: unexpected status %d", n.Event, resp.StatusCode)
	}

	w.log.DebugContext(ctx, "webhook delivered",
		slog.String("event", n.Event.String()),
		slog.String("claim_id", n.ClaimID.String()),
	)
	return nil
}
