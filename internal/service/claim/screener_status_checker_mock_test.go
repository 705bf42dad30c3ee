package claim

import (
	"context"
	"sync"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

var _ screenerStatusChecker = &screenerStatusCheckerMock{}

type screenerStatusCheckerMock struct {
	ServiceStatusFunc func(ctx context.Context) domain.ServiceStatus

	calls struct {
		ServiceStatus []struct {
			Ctx context.Context
		}
	}
	lockServiceStatus sync.RWMutex
}

func (mock *screenerStatusCheckerMock) ServiceStatus(ctx context.Context) domain.ServiceStatus {
	if mock.ServiceStatusFunc == nil {
		panic("screenerStatusCheckerMock.ServiceStatusFunc: method is nil but screenerStatusChecker.ServiceStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockServiceStatus.Lock()
	mock.calls.ServiceStatus = append(mock.calls.ServiceStatus, callInfo)
	mock.lockServiceStatus.Unlock()
	return mock.ServiceStatusFunc(ctx)
}

func (mock *screenerStatusCheckerMock) ServiceStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockServiceStatus.RLock()
	calls := mock.calls.ServiceStatus
	mock.lockServiceStatus.RUnlock()
	return calls
}
