package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/user"
	"sync"
)

var _ userAdminService = &userAdminServiceMock{}

type userAdminServiceMock struct {
	DashboardFunc  func(ctx context.Context) (*user.Dashboard, error)
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	UpdateUserFunc func(ctx context.Context, actorID uuid.UUID, id uuid.UUID, input user.UpdateUserInput) (*domain.User, error)

	calls struct {
		Dashboard []struct {
			Ctx context.Context
		}
		ListUsers []struct {
			Ctx context.Context
		}
		UpdateUser []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			ID      uuid.UUID
			Input   user.UpdateUserInput
		}
	}
	lockDashboard  sync.RWMutex
	lockListUsers  sync.RWMutex
	lockUpdateUser sync.RWMutex
}

func (mock *userAdminServiceMock) Dashboard(ctx context.Context) (*user.Dashboard, error) {
	if mock.DashboardFunc == nil {
		panic("userAdminServiceMock.DashboardFunc: method is nil but userAdminService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx)
}

func (mock *userAdminServiceMock) DashboardCalls() []struct {
	Ctx context.Context
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userAdminServiceMock.ListUsersFunc: method is nil but userAdminService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userAdminServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) UpdateUser(ctx context.Context, actorID uuid.UUID, id uuid.UUID, input user.UpdateUserInput) (*domain.User, error) {
	if mock.UpdateUserFunc == nil {
		panic("userAdminServiceMock.UpdateUserFunc: method is nil but userAdminService.UpdateUser was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		ID      uuid.UUID
		Input   user.UpdateUserInput
	}{Ctx: ctx, ActorID: actorID, ID: id, Input: input}
	mock.lockUpdateUser.Lock()
	mock.calls.UpdateUser = append(mock.calls.UpdateUser, callInfo)
	mock.lockUpdateUser.Unlock()
	return mock.UpdateUserFunc(ctx, actorID, id, input)
}

func (mock *userAdminServiceMock) UpdateUserCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	ID      uuid.UUID
	Input   user.UpdateUserInput
} {
	mock.lockUpdateUser.RLock()
	calls := mock.calls.UpdateUser
	mock.lockUpdateUser.RUnlock()
	return calls
}
