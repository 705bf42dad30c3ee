package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const verifyPath = "/v1/verify"

// HTTPOracle asks a remote verification service for a verdict.
type HTTPOracle struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewHTTPOracle creates an HTTPOracle for the service at baseURL.
func NewHTTPOracle(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPOracle {
	return &HTTPOracle{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "oracle_http"),
	}
}

type verifyRequest struct {
	ClaimID     uuid.UUID `json:"claim_id"`
	Description string    `json:"description"`
}

type verifyResponse struct {
	Verdict string `json:"verdict"`
}

// VerifyClaim returns the raw verdict string. Interpreting it is up to the
// caller.
func (o *HTTPOracle) VerifyClaim(ctx context.Context, claimID uuid.UUID, description string) (string, error) {
	payload, err := json.Marshal(verifyRequest{ClaimID: claimID, Description: description})
	if err != nil {
		return "", fmt.Errorf("oracle: encode request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, claimID, payload)
	if err != nil {
		o.log.ErrorContext(ctx, "oracle request failed",
			slog.String("claim_id", claimID.String()),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("oracle: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oracle: read body: %w", err)
	}

	var out verifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("oracle: decode json: %w", err)
	}

	o.log.DebugContext(ctx, "oracle verdict",
		slog.String("claim_id", claimID.String()),
		slog.String("verdict", out.Verdict),
	)

	return out.Verdict, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (o *HTTPOracle) doWithRetry(ctx context.Context, claimID uuid.UUID, payload []byte) (*http.Response, error) {
	send := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+verifyPath, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return o.httpClient.Do(req)
	}

	resp, err := send()

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	o.log.WarnContext(ctx, "oracle retry", slog.String("claim_id", claimID.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(o.retryDelay)

	return send()
}
