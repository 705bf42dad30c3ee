package fraud

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

	"github.com/heartmarshall/claims-backend/internal/domain"
)

const (
	screenPath = "/v1/screen"
	healthPath = "/health"
)

// HTTPScreener calls a remote fraud scoring service.
type HTTPScreener struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewHTTPScreener creates an HTTPScreener for the service at baseURL.
func NewHTTPScreener(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPScreener {
	return &HTTPScreener{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "fraud_http"),
	}
}

type screenRequest struct {
	ClaimID     uuid.UUID `json:"claim_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type screenResponse struct {
	IsFraudulent    bool           `json:"is_fraudulent"`
	ConfidenceScore float64        `json:"confidence_score"`
	Reason          string         `json:"reason"`
	RiskFactors     []string       `json:"risk_factors"`
	ModelVersion    string         `json:"model_version"`
	Timestamp       time.Time      `json:"timestamp"`
	Metadata        map[string]any `json:"metadata"`
}

// DetectFraud posts the claim to the scoring service.
func (s *HTTPScreener) DetectFraud(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error) {
	payload, err := json.Marshal(screenRequest{
		ClaimID:     claim.ID,
		OwnerID:     claim.OwnerID,
		Description: claim.Description,
		SubmittedAt: claim.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("fraud: encode request: %w", err)
	}

	s.log.DebugContext(ctx, "fraud screening request", slog.String("claim_id", claim.ID.String()))

	resp, err := s.doWithRetry(ctx, claim.ID, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+screenPath, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "fraud screening request failed",
			slog.String("claim_id", claim.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fraud: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fraud: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fraud: read body: %w", err)
	}

	var out screenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("fraud: decode json: %w", err)
	}
	if !(out.ConfidenceScore >= 0 && out.ConfidenceScore <= 1) {
		return nil, fmt.Errorf("fraud: confidence score %v out of range", out.ConfidenceScore)
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}
	if out.RiskFactors == nil {
		out.RiskFactors = []string{}
	}

	return &domain.FraudResult{
		IsFraudulent:    out.IsFraudulent,
		ConfidenceScore: out.ConfidenceScore,
		Reason:          out.Reason,
		RiskFactors:     out.RiskFactors,
		ModelVersion:    out.ModelVersion,
		Timestamp:       out.Timestamp,
		Metadata:        out.Metadata,
	}, nil
}

// ServiceStatus probes the scoring service health endpoint. It never fails;
// an unreachable service is reported as unhealthy.
func (s *HTTPScreener) ServiceStatus(ctx context.Context) domain.ServiceStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+healthPath, nil)
	if err != nil {
		return domain.ServiceStatus{Healthy: false, Message: err.Error()}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ServiceStatus{Healthy: false, Message: "unreachable: " + err.Error()}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.ServiceStatus{Healthy: false, Message: fmt.Sprintf("health check returned %d", resp.StatusCode)}
	}
	return domain.ServiceStatus{Healthy: true, Message: "ok"}
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (s *HTTPScreener) doWithRetry(ctx context.Context, claimID uuid.UUID, build func() (*http.Request, error)) (*http.Response, error) {
	req, err := build()
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	s.log.WarnContext(ctx, "fraud screening retry", slog.String("claim_id", claimID.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(s.retryDelay)

	req, err = build()
	if err != nil {
		return nil, err
	}
	return s.httpClient.Do(req)
}
