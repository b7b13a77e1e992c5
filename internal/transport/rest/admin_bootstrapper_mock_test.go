package rest

import (
	"context"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	"sync"
)

var _ adminBootstrapper = &adminBootstrapperMock{}

type adminBootstrapperMock struct {
	InitAdminFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)

	calls struct {
		InitAdmin []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockInitAdmin sync.RWMutex
}

func (mock *adminBootstrapperMock) InitAdmin(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.InitAdminFunc == nil {
		panic("adminBootstrapperMock.InitAdminFunc: method is nil but adminBootstrapper.InitAdmin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockInitAdmin.Lock()
	mock.calls.InitAdmin = append(mock.calls.InitAdmin, callInfo)
	mock.lockInitAdmin.Unlock()
	return mock.InitAdminFunc(ctx, input)
}

func (mock *adminBootstrapperMock) InitAdminCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockInitAdmin.RLock()
	calls := mock.calls.InitAdmin
	mock.lockInitAdmin.RUnlock()
	return calls
}
