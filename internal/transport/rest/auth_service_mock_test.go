package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	InitAdminFunc     func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc            func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uuid.UUID, input auth.UpdateProfileInput) (*domain.User, error)

	calls struct {
		InitAdmin []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Me []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  auth.UpdateProfileInput
		}
	}
	lockInitAdmin     sync.RWMutex
	lockRegister      sync.RWMutex
	lockLogin         sync.RWMutex
	lockMe            sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *authServiceMock) InitAdmin(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.InitAdminFunc == nil {
		panic("authServiceMock.InitAdminFunc: method is nil but authService.InitAdmin was just called")
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

func (mock *authServiceMock) InitAdminCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockInitAdmin.RLock()
	calls := mock.calls.InitAdmin
	mock.lockInitAdmin.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx, userID)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) UpdateProfile(ctx context.Context, userID uuid.UUID, input auth.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("authServiceMock.UpdateProfileFunc: method is nil but authService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  auth.UpdateProfileInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, userID, input)
}

func (mock *authServiceMock) UpdateProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  auth.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
