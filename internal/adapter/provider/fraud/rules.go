// Package fraud provides fraud screeners: a local keyword rule engine and an
// HTTP client for a remote scoring service.
package fraud

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// rule adds weight to the score when any of its phrases occurs in the
// lowercased description.
type rule struct {
	factor  string
	weight  float64
	phrases []string
}

var defaultRules = []rule{
	{factor: "cash_settlement_request", weight: 0.35, phrases: []string{"cash only", "pay in cash", "wire the money", "western union"}},
	{factor: "urgency_pressure", weight: 0.2, phrases: []string{"urgent", "immediately", "asap", "right away"}},
	{factor: "missing_documentation", weight: 0.25, phrases: []string{"no receipt", "lost the receipt", "no documents", "no photos"}},
	{factor: "total_loss_claim", weight: 0.2, phrases: []string{"total loss", "completely destroyed", "everything was stolen"}},
	{factor: "duplicate_claim", weight: 0.4, phrases: []string{"same as last claim", "again this month", "resubmit", "second time this year"}},
	{factor: "third_party_payee", weight: 0.3, phrases: []string{"pay my friend", "pay my cousin", "different account"}},
}

// shortDescriptionLen is the minimum description length in runes below which
// the claim is considered vague.
const shortDescriptionLen = 20

const shortDescriptionWeight = 0.15

// RulesScreener scores claims against a fixed set of keyword rules. It needs
// no network and is the default screener.
type RulesScreener struct {
	threshold    float64
	modelVersion string
	rules        []rule
	now          func() time.Time
	log          *slog.Logger
}

// NewRulesScreener creates a RulesScreener that reports a claim as fraudulent
// when its score reaches threshold.
func NewRulesScreener(logger *slog.Logger, threshold float64, modelVersion string) *RulesScreener {
	return &RulesScreener{
		threshold:    threshold,
		modelVersion: modelVersion,
		rules:        defaultRules,
		now:          func() time.Time { return time.Now().UTC() },
		log:          logger.With("adapter", "fraud_rules"),
	}
}

// DetectFraud scores the claim description.
func (s *RulesScreener) DetectFraud(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.ToLower(claim.Description)

	var (
		score   float64
		factors = []string{}
	)
	for _, r := range s.rules {
		for _, p := range r.phrases {
			if strings.Contains(text, p) {
				score += r.weight
				factors = append(factors, r.factor)
				break
			}
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(claim.Description)) < shortDescriptionLen {
		score += shortDescriptionWeight
		factors = append(factors, "vague_description")
	}

	score = math.Min(1, math.Round(score*100)/100)
	fraudulent := score >= s.threshold

	reason := "no risk factors matched"
	if len(factors) > 0 {
		reason = "matched risk factors: " + strings.Join(factors, ", ")
	}

	s.log.DebugContext(ctx, "rules screening",
		slog.String("claim_id", claim.ID.String()),
		slog.Float64("score", score),
		slog.Int("factors", len(factors)),
		slog.Bool("fraudulent", fraudulent),
	)

	return &domain.FraudResult{
		IsFraudulent:    fraudulent,
		ConfidenceScore: score,
		Reason:          reason,
		RiskFactors:     factors,
		ModelVersion:    s.modelVersion,
		Timestamp:       s.now(),
		Metadata: map[string]any{
			"threshold":     s.threshold,
			"rules_checked": len(s.rules),
		},
	}, nil
}

// ServiceStatus always reports healthy; the rule set is compiled in.
func (s *RulesScreener) ServiceStatus(context.Context) domain.ServiceStatus {
	return domain.ServiceStatus{Healthy: true, Message: "rules engine " + s.modelVersion}
}
