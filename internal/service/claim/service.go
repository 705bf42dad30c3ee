// Package claim implements the claim lifecycle orchestrator: submission,
// one-time fraud screening, verdict advancement and the access-controlled
// operations around them.
package claim

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

const (
	MaxDescriptionLength = 5000
	MaxRemarksLength     = 2000
	DefaultListLimit     = 50
	MaxListLimit         = 200
)

// screeningTimeout bounds a single fraud screener call. Screening runs on a
// context detached from the caller, so this is its only deadline.
const screeningTimeout = 30 * time.Second

// Metric outcome labels.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeFlagged = "flagged"
	outcomeClean   = "clean"
	outcomeSkipped = "skipped"
)

type claimRepo interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Claim, error)
	ListAll(ctx context.Context, filter domain.ClaimFilter) ([]domain.Claim, error)
	Update(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter domain.ClaimFilter) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type fraudScreener interface {
	DetectFraud(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error)
}

// screenerStatusChecker is implemented by screeners that can report their
// own health.
type screenerStatusChecker interface {
	ServiceStatus(ctx context.Context) domain.ServiceStatus
}

type verdictOracle interface {
	VerifyClaim(ctx context.Context, claimID uuid.UUID, description string) (string, error)
}

type notifier interface {
	SendSubmitted(ctx context.Context, claim domain.Claim, owner *domain.Owner) error
	SendStatusChanged(ctx context.Context, claim domain.Claim, owner *domain.Owner, prev, next domain.ClaimStatus, remarks *string) error
	SendProcessed(ctx context.Context, claim domain.Claim, owner *domain.Owner, verdict string) error
}

type ownerLookup interface {
	FindOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error)
}

type taskQueue interface {
	Submit(name string, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	ClaimSubmitted()
	ClaimTransition(from, to domain.ClaimStatus)
	FraudScreening(outcome string, elapsed time.Duration)
	OracleCall(outcome string)
	NotificationFailed(event domain.NotificationEvent)
}

// Service orchestrates the claim lifecycle.
type Service struct {
	claims   claimRepo
	tx       txManager
	screener fraudScreener
	status   screenerStatusChecker
	oracle   verdictOracle
	notifier notifier
	owners   ownerLookup
	queue    taskQueue
	metrics  metricsRecorder
	log      *slog.Logger

	// screening collapses concurrent in-process screenings of one claim id.
	screening singleflight.Group

	now func() time.Time
}

// NewService creates a new claim Service. metrics may be nil.
func NewService(
	log *slog.Logger,
	claims claimRepo,
	tx txManager,
	screener fraudScreener,
	oracle verdictOracle,
	notifier notifier,
	owners ownerLookup,
	queue taskQueue,
	metrics metricsRecorder,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	status, _ := screener.(screenerStatusChecker)

	return &Service{
		claims:   claims,
		tx:       tx,
		screener: screener,
		status:   status,
		oracle:   oracle,
		notifier: notifier,
		owners:   owners,
		queue:    queue,
		metrics:  metrics,
		log:      log.With("service", "claim"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FraudServiceStatus reports the screener's health, or a default healthy
// status when the screener has no status check.
func (s *Service) FraudServiceStatus(ctx context.Context) domain.ServiceStatus {
	if s.status == nil {
		return domain.DefaultServiceStatus()
	}
	return s.status.ServiceStatus(ctx)
}

func (s *Service) recordTransition(from, to domain.ClaimStatus) {
	if from != to {
		s.metrics.ClaimTransition(from, to)
	}
}

type nopMetrics struct{}

func (nopMetrics) ClaimSubmitted()                                        {}
func (nopMetrics) ClaimTransition(domain.ClaimStatus, domain.ClaimStatus) {}
func (nopMetrics) FraudScreening(string, time.Duration)                   {}
func (nopMetrics) OracleCall(string)                                      {}
func (nopMetrics) NotificationFailed(domain.NotificationEvent)            {}
