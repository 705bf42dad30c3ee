package claim

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	"github.com/heartmarshall/claims-backend/pkg/ctxutil"
)

//go:generate moq -out claim_repo_mock_test.go -pkg claim . claimRepo
//go:generate moq -out tx_manager_mock_test.go -pkg claim . txManager
//go:generate moq -out fraud_screener_mock_test.go -pkg claim . fraudScreener
//go:generate moq -out screener_status_checker_mock_test.go -pkg claim . screenerStatusChecker
//go:generate moq -out verdict_oracle_mock_test.go -pkg claim . verdictOracle
//go:generate moq -out notifier_mock_test.go -pkg claim . notifier
//go:generate moq -out owner_lookup_mock_test.go -pkg claim . ownerLookup
//go:generate moq -out task_queue_mock_test.go -pkg claim . taskQueue
//go:generate moq -out metrics_recorder_mock_test.go -pkg claim . metricsRecorder

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func userCtx(id uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithUserRole(ctx, domain.UserRoleUser)
}

func adminCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithUserRole(ctx, domain.UserRoleAdmin)
}

// memStore is an in-memory claim store behind a claimRepoMock, so tests can
// observe both the calls and the resulting state.
type memStore struct {
	mu     sync.Mutex
	claims map[uuid.UUID]domain.Claim
}

func newMemStore(seed ...domain.Claim) (*memStore, *claimRepoMock) {
	s := &memStore{claims: make(map[uuid.UUID]domain.Claim)}
	for _, c := range seed {
		s.claims[c.ID] = c
	}

	get := func(_ context.Context, id uuid.UUID) (*domain.Claim, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c, ok := s.claims[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		return &c, nil
	}

	repo := &claimRepoMock{
		CreateFunc: func(_ context.Context, claim *domain.Claim) (*domain.Claim, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			c := *claim
			c.ID = uuid.New()
			c.CreatedAt = testNow
			c.UpdatedAt = testNow
			s.claims[c.ID] = c
			return &c, nil
		},
		GetByIDFunc:          get,
		GetByIDForUpdateFunc: get,
		UpdateFunc: func(_ context.Context, claim *domain.Claim) (*domain.Claim, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.claims[claim.ID]; !ok {
				return nil, domain.ErrNotFound
			}
			c := *claim
			c.Owner = nil
			s.claims[c.ID] = c
			return &c, nil
		},
		DeleteFunc: func(_ context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.claims[id]; !ok {
				return domain.ErrNotFound
			}
			delete(s.claims, id)
			return nil
		},
		ListByOwnerFunc: func(_ context.Context, ownerID uuid.UUID) ([]domain.Claim, error) {
			return s.list(domain.ClaimFilter{OwnerID: &ownerID}), nil
		},
		ListAllFunc: func(_ context.Context, filter domain.ClaimFilter) ([]domain.Claim, error) {
			return s.list(filter), nil
		},
		CountFunc: func(_ context.Context, filter domain.ClaimFilter) (int, error) {
			filter.Limit = 0
			return len(s.list(filter)), nil
		},
	}
	return s, repo
}

func (s *memStore) get(id uuid.UUID) (domain.Claim, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[id]
	return c, ok
}

func (s *memStore) list(f domain.ClaimFilter) []domain.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Claim{}
	for _, c := range s.claims {
		if f.OwnerID != nil && c.OwnerID != *f.OwnerID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.IsFraudulent != nil && c.IsFraudulent != *f.IsFraudulent {
			continue
		}
		if f.FraudCheckCompleted != nil && c.FraudCheckCompleted != *f.FraudCheckCompleted {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

type testDeps struct {
	claims   claimRepo
	screener fraudScreener
	oracle   *verdictOracleMock
	notifier *notifierMock
	owners   *ownerLookupMock
	queue    *taskQueueMock
	metrics  metricsRecorder
}

// newTestService fills every unset dependency with a permissive mock.
func newTestService(d testDeps) *Service {
	if d.oracle == nil {
		d.oracle = &verdictOracleMock{
			VerifyClaimFunc: func(ctx context.Context, claimID uuid.UUID, description string) (string, error) {
				return domain.VerdictApproved, nil
			},
		}
	}
	if d.notifier == nil {
		d.notifier = okNotifier()
	}
	if d.owners == nil {
		d.owners = &ownerLookupMock{
			FindOwnerFunc: func(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
				return &domain.Owner{ID: id, Email: "owner@example.com", Name: "Owner", Role: domain.UserRoleUser}, nil
			},
		}
	}
	if d.queue == nil {
		d.queue = &taskQueueMock{
			SubmitFunc: func(name string, fn func(ctx context.Context) error) error { return nil },
		}
	}

	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	logger := slog.New(slog.DiscardHandler)
	svc := NewService(logger, d.claims, tx, d.screener, d.oracle, d.notifier, d.owners, d.queue, d.metrics)
	svc.now = func() time.Time { return testNow }
	return svc
}

func okNotifier() *notifierMock {
	return &notifierMock{
		SendSubmittedFunc: func(ctx context.Context, claim domain.Claim, owner *domain.Owner) error {
			return nil
		},
		SendStatusChangedFunc: func(ctx context.Context, claim domain.Claim, owner *domain.Owner, prev, next domain.ClaimStatus, remarks *string) error {
			return nil
		},
		SendProcessedFunc: func(ctx context.Context, claim domain.Claim, owner *domain.Owner, verdict string) error {
			return nil
		},
	}
}

func screenerReturning(fraudulent bool, score float64) *fraudScreenerMock {
	return &fraudScreenerMock{
		DetectFraudFunc: func(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error) {
			return &domain.FraudResult{
				IsFraudulent:    fraudulent,
				ConfidenceScore: score,
				Reason:          "test screening",
				RiskFactors:     []string{},
				ModelVersion:    "test-v1",
				Timestamp:       testNow,
			}, nil
		},
	}
}

func pendingClaim(ownerID uuid.UUID, screened bool) domain.Claim {
	c := domain.Claim{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Description: "Rear bumper damaged in parking lot",
		Status:      domain.ClaimStatusPending,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	if screened {
		score := 0.1
		c.FraudCheckCompleted = true
		c.FraudConfidenceScore = &score
		c.FraudDetection = &domain.FraudDetection{Reason: "clean", RiskFactors: []string{}, ModelVersion: "test-v1", DetectedAt: testNow}
	}
	return c
}
