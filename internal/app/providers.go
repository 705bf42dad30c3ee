package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/adapter/notify"
	"github.com/heartmarshall/claims-backend/internal/adapter/provider/fraud"
	"github.com/heartmarshall/claims-backend/internal/adapter/provider/oracle"
	"github.com/heartmarshall/claims-backend/internal/config"
	"github.com/heartmarshall/claims-backend/internal/domain"
)

type fraudScreener interface {
	DetectFraud(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error)
}

type verdictOracle interface {
	VerifyClaim(ctx context.Context, claimID uuid.UUID, description string) (string, error)
}

type claimNotifier interface {
	SendSubmitted(ctx context.Context, claim domain.Claim, owner *domain.Owner) error
	SendStatusChanged(ctx context.Context, claim domain.Claim, owner *domain.Owner, prev, next domain.ClaimStatus, remarks *string) error
	SendProcessed(ctx context.Context, claim domain.Claim, owner *domain.Owner, verdict string) error
}

func newFraudScreener(cfg config.FraudConfig, logger *slog.Logger) (fraudScreener, error) {
	switch cfg.Mode {
	case "rules":
		return fraud.NewRulesScreener(logger, cfg.Threshold, cfg.ModelVersion), nil
	case "http":
		return fraud.NewHTTPScreener(cfg.BaseURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown fraud mode %q", cfg.Mode)
	}
}

func newVerdictOracle(cfg config.OracleConfig, logger *slog.Logger) (verdictOracle, error) {
	switch cfg.Mode {
	case "static":
		return oracle.NewStaticOracle(cfg.StaticVerdict), nil
	case "http":
		return oracle.NewHTTPOracle(cfg.BaseURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown oracle mode %q", cfg.Mode)
	}
}

func newNotifier(cfg config.NotifyConfig, logger *slog.Logger) (claimNotifier, error) {
	switch cfg.Mode {
	case "log":
		return notify.NewLogNotifier(logger), nil
	case "webhook":
		return notify.NewWebhookNotifier(cfg.WebhookURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown notify mode %q", cfg.Mode)
	}
}
