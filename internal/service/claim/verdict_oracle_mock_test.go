package claim

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ verdictOracle = &verdictOracleMock{}

type verdictOracleMock struct {
	VerifyClaimFunc func(ctx context.Context, claimID uuid.UUID, description string) (string, error)

	calls struct {
		VerifyClaim []struct {
			Ctx         context.Context
			ClaimID     uuid.UUID
			Description string
		}
	}
	lockVerifyClaim sync.RWMutex
}

func (mock *verdictOracleMock) VerifyClaim(ctx context.Context, claimID uuid.UUID, description string) (string, error) {
	if mock.VerifyClaimFunc == nil {
		panic("verdictOracleMock.VerifyClaimFunc: method is nil but verdictOracle.VerifyClaim was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ClaimID     uuid.UUID
		Description string
	}{Ctx: ctx, ClaimID: claimID, Description: description}
	mock.lockVerifyClaim.Lock()
	mock.calls.VerifyClaim = append(mock.calls.VerifyClaim, callInfo)
	mock.lockVerifyClaim.Unlock()
	return mock.VerifyClaimFunc(ctx, claimID, description)
}

func (mock *verdictOracleMock) VerifyClaimCalls() []struct {
	Ctx         context.Context
	ClaimID     uuid.UUID
	Description string
} {
	mock.lockVerifyClaim.RLock()
	calls := mock.calls.VerifyClaim
	mock.lockVerifyClaim.RUnlock()
	return calls
}
