package claim

import (
	"context"
	"sync"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

var _ fraudScreener = &fraudScreenerMock{}

type fraudScreenerMock struct {
	DetectFraudFunc func(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error)

	calls struct {
		DetectFraud []struct {
			Ctx   context.Context
			Claim domain.Claim
		}
	}
	lockDetectFraud sync.RWMutex
}

func (mock *fraudScreenerMock) DetectFraud(ctx context.Context, claim domain.Claim) (*domain.FraudResult, error) {
	if mock.DetectFraudFunc == nil {
		panic("fraudScreenerMock.DetectFraudFunc: method is nil but fraudScreener.DetectFraud was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Claim domain.Claim
	}{Ctx: ctx, Claim: claim}
	mock.lockDetectFraud.Lock()
	mock.calls.DetectFraud = append(mock.calls.DetectFraud, callInfo)
	mock.lockDetectFraud.Unlock()
	return mock.DetectFraudFunc(ctx, claim)
}

func (mock *fraudScreenerMock) DetectFraudCalls() []struct {
	Ctx   context.Context
	Claim domain.Claim
} {
	mock.lockDetectFraud.RLock()
	calls := mock.calls.DetectFraud
	mock.lockDetectFraud.RUnlock()
	return calls
}
