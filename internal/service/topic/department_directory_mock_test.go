package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ departmentDirectory = &departmentDirectoryMock{}

type departmentDirectoryMock struct {
	ExistsFunc func(ctx context.Context, departmentID uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx          context.Context
			DepartmentID uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *departmentDirectoryMock) Exists(ctx context.Context, departmentID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("departmentDirectoryMock.ExistsFunc: method is nil but departmentDirectory.Exists was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		DepartmentID uuid.UUID
	}{
		Ctx:          ctx,
		DepartmentID: departmentID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, departmentID)
}

func (mock *departmentDirectoryMock) ExistsCalls() []struct {
	Ctx          context.Context
	DepartmentID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
