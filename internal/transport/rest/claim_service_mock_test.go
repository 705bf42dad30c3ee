package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	claimsvc "github.com/heartmarshall/claims-backend/internal/service/claim"
)

var _ claimService = &claimServiceMock{}

type claimServiceMock struct {
	AdminUpdateClaimFunc      func(ctx context.Context, claimID uuid.UUID, input claimsvc.AdminUpdateInput) (*domain.Claim, error)
	DeleteClaimFunc           func(ctx context.Context, claimID uuid.UUID) error
	FraudServiceStatusFunc    func(ctx context.Context) domain.ServiceStatus
	GetClaimFunc              func(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)
	GetStatisticsFunc         func(ctx context.Context) (*domain.ClaimStatistics, error)
	ListClaimsFunc            func(ctx context.Context, input claimsvc.ListClaimsInput) ([]domain.Claim, error)
	ListMyClaimsFunc          func(ctx context.Context) ([]domain.Claim, error)
	ProcessClaimFunc          func(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)
	SubmitClaimFunc           func(ctx context.Context, input claimsvc.SubmitClaimInput) (*domain.Claim, error)
	TriggerFraudScreeningFunc func(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)

	calls struct {
		AdminUpdateClaim []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
			Input   claimsvc.AdminUpdateInput
		}
		DeleteClaim []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
		}
		FraudServiceStatus []struct {
			Ctx context.Context
		}
		GetClaim []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
		}
		GetStatistics []struct {
			Ctx context.Context
		}
		ListClaims []struct {
			Ctx   context.Context
			Input claimsvc.ListClaimsInput
		}
		ListMyClaims []struct {
			Ctx context.Context
		}
		ProcessClaim []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
		}
		SubmitClaim []struct {
			Ctx   context.Context
			Input claimsvc.SubmitClaimInput
		}
		TriggerFraudScreening []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
		}
	}
	lockAdminUpdateClaim      sync.RWMutex
	lockDeleteClaim           sync.RWMutex
	lockFraudServiceStatus    sync.RWMutex
	lockGetClaim              sync.RWMutex
	lockGetStatistics         sync.RWMutex
	lockListClaims            sync.RWMutex
	lockListMyClaims          sync.RWMutex
	lockProcessClaim          sync.RWMutex
	lockSubmitClaim           sync.RWMutex
	lockTriggerFraudScreening sync.RWMutex
}

func (mock *claimServiceMock) AdminUpdateClaim(ctx context.Context, claimID uuid.UUID, input claimsvc.AdminUpdateInput) (*domain.Claim, error) {
	if mock.AdminUpdateClaimFunc == nil {
		panic("claimServiceMock.AdminUpdateClaimFunc: method is nil but claimService.AdminUpdateClaim was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		Input   claimsvc.AdminUpdateInput
	}{Ctx: ctx, ClaimID: claimID, Input: input}
	mock.lockAdminUpdateClaim.Lock()
	mock.calls.AdminUpdateClaim = append(mock.calls.AdminUpdateClaim, callInfo)
	mock.lockAdminUpdateClaim.Unlock()
	return mock.AdminUpdateClaimFunc(ctx, claimID, input)
}

func (mock *claimServiceMock) AdminUpdateClaimCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
	Input   claimsvc.AdminUpdateInput
} {
	mock.lockAdminUpdateClaim.RLock()
	calls := mock.calls.AdminUpdateClaim
	mock.lockAdminUpdateClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) DeleteClaim(ctx context.Context, claimID uuid.UUID) error {
	if mock.DeleteClaimFunc == nil {
		panic("claimServiceMock.DeleteClaimFunc: method is nil but claimService.DeleteClaim was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
	}{Ctx: ctx, ClaimID: claimID}
	mock.lockDeleteClaim.Lock()
	mock.calls.DeleteClaim = append(mock.calls.DeleteClaim, callInfo)
	mock.lockDeleteClaim.Unlock()
	return mock.DeleteClaimFunc(ctx, claimID)
}

func (mock *claimServiceMock) DeleteClaimCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
} {
	mock.lockDeleteClaim.RLock()
	calls := mock.calls.DeleteClaim
	mock.lockDeleteClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) FraudServiceStatus(ctx context.Context) domain.ServiceStatus {
	if mock.FraudServiceStatusFunc == nil {
		panic("claimServiceMock.FraudServiceStatusFunc: method is nil but claimService.FraudServiceStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFraudServiceStatus.Lock()
	mock.calls.FraudServiceStatus = append(mock.calls.FraudServiceStatus, callInfo)
	mock.lockFraudServiceStatus.Unlock()
	return mock.FraudServiceStatusFunc(ctx)
}

func (mock *claimServiceMock) FraudServiceStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockFraudServiceStatus.RLock()
	calls := mock.calls.FraudServiceStatus
	mock.lockFraudServiceStatus.RUnlock()
	return calls
}

func (mock *claimServiceMock) GetClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	if mock.GetClaimFunc == nil {
		panic("claimServiceMock.GetClaimFunc: method is nil but claimService.GetClaim was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
	}{Ctx: ctx, ClaimID: claimID}
	mock.lockGetClaim.Lock()
	mock.calls.GetClaim = append(mock.calls.GetClaim, callInfo)
	mock.lockGetClaim.Unlock()
	return mock.GetClaimFunc(ctx, claimID)
}

func (mock *claimServiceMock) GetClaimCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
} {
	mock.lockGetClaim.RLock()
	calls := mock.calls.GetClaim
	mock.lockGetClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) GetStatistics(ctx context.Context) (*domain.ClaimStatistics, error) {
	if mock.GetStatisticsFunc == nil {
		panic("claimServiceMock.GetStatisticsFunc: method is nil but claimService.GetStatistics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetStatistics.Lock()
	mock.calls.GetStatistics = append(mock.calls.GetStatistics, callInfo)
	mock.lockGetStatistics.Unlock()
	return mock.GetStatisticsFunc(ctx)
}

func (mock *claimServiceMock) GetStatisticsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStatistics.RLock()
	calls := mock.calls.GetStatistics
	mock.lockGetStatistics.RUnlock()
	return calls
}

func (mock *claimServiceMock) ListClaims(ctx context.Context, input claimsvc.ListClaimsInput) ([]domain.Claim, error) {
	if mock.ListClaimsFunc == nil {
		panic("claimServiceMock.ListClaimsFunc: method is nil but claimService.ListClaims was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claimsvc.ListClaimsInput
	}{Ctx: ctx, Input: input}
	mock.lockListClaims.Lock()
	mock.calls.ListClaims = append(mock.calls.ListClaims, callInfo)
	mock.lockListClaims.Unlock()
	return mock.ListClaimsFunc(ctx, input)
}

func (mock *claimServiceMock) ListClaimsCalls() []struct {
	Ctx   context.Context
	Input claimsvc.ListClaimsInput
} {
	mock.lockListClaims.RLock()
	calls := mock.calls.ListClaims
	mock.lockListClaims.RUnlock()
	return calls
}

func (mock *claimServiceMock) ListMyClaims(ctx context.Context) ([]domain.Claim, error) {
	if mock.ListMyClaimsFunc == nil {
		panic("claimServiceMock.ListMyClaimsFunc: method is nil but claimService.ListMyClaims was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMyClaims.Lock()
	mock.calls.ListMyClaims = append(mock.calls.ListMyClaims, callInfo)
	mock.lockListMyClaims.Unlock()
	return mock.ListMyClaimsFunc(ctx)
}

func (mock *claimServiceMock) ListMyClaimsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMyClaims.RLock()
	calls := mock.calls.ListMyClaims
	mock.lockListMyClaims.RUnlock()
	return calls
}

func (mock *claimServiceMock) ProcessClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	if mock.ProcessClaimFunc == nil {
		panic("claimServiceMock.ProcessClaimFunc: method is nil but claimService.ProcessClaim was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
	}{Ctx: ctx, ClaimID: claimID}
	mock.lockProcessClaim.Lock()
	mock.calls.ProcessClaim = append(mock.calls.ProcessClaim, callInfo)
	mock.lockProcessClaim.Unlock()
	return mock.ProcessClaimFunc(ctx, claimID)
}

func (mock *claimServiceMock) ProcessClaimCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
} {
	mock.lockProcessClaim.RLock()
	calls := mock.calls.ProcessClaim
	mock.lockProcessClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) SubmitClaim(ctx context.Context, input claimsvc.SubmitClaimInput) (*domain.Claim, error) {
	if mock.SubmitClaimFunc == nil {
		panic("claimServiceMock.SubmitClaimFunc: method is nil but claimService.SubmitClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claimsvc.SubmitClaimInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitClaim.Lock()
	mock.calls.SubmitClaim = append(mock.calls.SubmitClaim, callInfo)
	mock.lockSubmitClaim.Unlock()
	return mock.SubmitClaimFunc(ctx, input)
}

func (mock *claimServiceMock) SubmitClaimCalls() []struct {
	Ctx   context.Context
	Input claimsvc.SubmitClaimInput
} {
	mock.lockSubmitClaim.RLock()
	calls := mock.calls.SubmitClaim
	mock.lockSubmitClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) TriggerFraudScreening(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error) {
	if mock.TriggerFraudScreeningFunc == nil {
		panic("claimServiceMock.TriggerFraudScreeningFunc: method is nil but claimService.TriggerFraudScreening was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
	}{Ctx: ctx, ClaimID: claimID}
	mock.lockTriggerFraudScreening.Lock()
	mock.calls.TriggerFraudScreening = append(mock.calls.TriggerFraudScreening, callInfo)
	mock.lockTriggerFraudScreening.Unlock()
	return mock.TriggerFraudScreeningFunc(ctx, claimID)
}

func (mock *claimServiceMock) TriggerFraudScreeningCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
} {
	mock.lockTriggerFraudScreening.RLock()
	calls := mock.calls.TriggerFraudScreening
	mock.lockTriggerFraudScreening.RUnlock()
	return calls
}
