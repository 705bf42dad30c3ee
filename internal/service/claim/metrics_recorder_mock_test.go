package claim

import (
	"sync"
	"time"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	ClaimSubmittedFunc     func()
	ClaimTransitionFunc    func(from domain.ClaimStatus, to domain.ClaimStatus)
	FraudScreeningFunc     func(outcome string, elapsed time.Duration)
	NotificationFailedFunc func(event domain.NotificationEvent)
	OracleCallFunc         func(outcome string)

	calls struct {
		ClaimSubmitted []struct {
		}
		ClaimTransition []struct {
			From domain.ClaimStatus
			To   domain.ClaimStatus
		}
		FraudScreening []struct {
			Outcome string
			Elapsed time.Duration
		}
		NotificationFailed []struct {
			Event domain.NotificationEvent
		}
		OracleCall []struct {
			Outcome string
		}
	}
	lockClaimSubmitted     sync.RWMutex
	lockClaimTransition    sync.RWMutex
	lockFraudScreening     sync.RWMutex
	lockNotificationFailed sync.RWMutex
	lockOracleCall         sync.RWMutex
}

func (mock *metricsRecorderMock) ClaimSubmitted() {
	if mock.ClaimSubmittedFunc == nil {
		panic("metricsRecorderMock.ClaimSubmittedFunc: method is nil but metricsRecorder.ClaimSubmitted was just called")
	}
	callInfo := struct{}{}
	mock.lockClaimSubmitted.Lock()
	mock.calls.ClaimSubmitted = append(mock.calls.ClaimSubmitted, callInfo)
	mock.lockClaimSubmitted.Unlock()
	mock.ClaimSubmittedFunc()
}

func (mock *metricsRecorderMock) ClaimSubmittedCalls() []struct{} {
	mock.lockClaimSubmitted.RLock()
	calls := mock.calls.ClaimSubmitted
	mock.lockClaimSubmitted.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) ClaimTransition(from domain.ClaimStatus, to domain.ClaimStatus) {
	if mock.ClaimTransitionFunc == nil {
		panic("metricsRecorderMock.ClaimTransitionFunc: method is nil but metricsRecorder.ClaimTransition was just called")
	}
	callInfo := struct {
		From domain.ClaimStatus
		To   domain.ClaimStatus
	}{From: from, To: to}
	mock.lockClaimTransition.Lock()
	mock.calls.ClaimTransition = append(mock.calls.ClaimTransition, callInfo)
	mock.lockClaimTransition.Unlock()
	mock.ClaimTransitionFunc(from, to)
}

func (mock *metricsRecorderMock) ClaimTransitionCalls() []struct {
	From domain.ClaimStatus
	To   domain.ClaimStatus
} {
	mock.lockClaimTransition.RLock()
	calls := mock.calls.ClaimTransition
	mock.lockClaimTransition.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) FraudScreening(outcome string, elapsed time.Duration) {
	if mock.FraudScreeningFunc == nil {
		panic("metricsRecorderMock.FraudScreeningFunc: method is nil but metricsRecorder.FraudScreening was just called")
	}
	callInfo := struct {
		Outcome string
		Elapsed time.Duration
	}{Outcome: outcome, Elapsed: elapsed}
	mock.lockFraudScreening.Lock()
	mock.calls.FraudScreening = append(mock.calls.FraudScreening, callInfo)
	mock.lockFraudScreening.Unlock()
	mock.FraudScreeningFunc(outcome, elapsed)
}

func (mock *metricsRecorderMock) FraudScreeningCalls() []struct {
	Outcome string
	Elapsed time.Duration
} {
	mock.lockFraudScreening.RLock()
	calls := mock.calls.FraudScreening
	mock.lockFraudScreening.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) NotificationFailed(event domain.NotificationEvent) {
	if mock.NotificationFailedFunc == nil {
		panic("metricsRecorderMock.NotificationFailedFunc: method is nil but metricsRecorder.NotificationFailed was just called")
	}
	callInfo := struct {
		Event domain.NotificationEvent
	}{Event: event}
	mock.lockNotificationFailed.Lock()
	mock.calls.NotificationFailed = append(mock.calls.NotificationFailed, callInfo)
	mock.lockNotificationFailed.Unlock()
	mock.NotificationFailedFunc(event)
}

func (mock *metricsRecorderMock) NotificationFailedCalls() []struct {
	Event domain.NotificationEvent
} {
	mock.lockNotificationFailed.RLock()
	calls := mock.calls.NotificationFailed
	mock.lockNotificationFailed.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) OracleCall(outcome string) {
	if mock.OracleCallFunc == nil {
		panic("metricsRecorderMock.OracleCallFunc: method is nil but metricsRecorder.OracleCall was just called")
	}
	callInfo := struct {
		Outcome string
	}{Outcome: outcome}
	mock.lockOracleCall.Lock()
	mock.calls.OracleCall = append(mock.calls.OracleCall, callInfo)
	mock.lockOracleCall.Unlock()
	mock.OracleCallFunc(outcome)
}

func (mock *metricsRecorderMock) OracleCallCalls() []struct {
	Outcome string
} {
	mock.lockOracleCall.RLock()
	calls := mock.calls.OracleCall
	mock.lockOracleCall.RUnlock()
	return calls
}
