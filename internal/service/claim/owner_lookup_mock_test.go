package claim

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

var _ ownerLookup = &ownerLookupMock{}

type ownerLookupMock struct {
	FindOwnerFunc func(ctx context.Context, id uuid.UUID) (*domain.Owner, error)

	calls struct {
		FindOwner []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockFindOwner sync.RWMutex
}

func (mock *ownerLookupMock) FindOwner(ctx context.Context, id uuid.UUID) (*domain.Owner, error) {
	if mock.FindOwnerFunc == nil {
		panic("ownerLookupMock.FindOwnerFunc: method is nil but ownerLookup.FindOwner was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockFindOwner.Lock()
	mock.calls.FindOwner = append(mock.calls.FindOwner, callInfo)
	mock.lockFindOwner.Unlock()
	return mock.FindOwnerFunc(ctx, id)
}

func (mock *ownerLookupMock) FindOwnerCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockFindOwner.RLock()
	calls := mock.calls.FindOwner
	mock.lockFindOwner.RUnlock()
	return calls
}
