package middleware

import (
	"context"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
)

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	AuthorizeFunc func(ctx context.Context, token string, roles ...domain.UserRole) (*domain.User, error)

	calls struct {
		Authorize []struct {
			Ctx   context.Context
			Token string
			Roles []domain.UserRole
		}
	}
	lockAuthorize sync.RWMutex
}

func (mock *authorizerMock) Authorize(ctx context.Context, token string, roles ...domain.UserRole) (*domain.User, error) {
	if mock.AuthorizeFunc == nil {
		panic("authorizerMock.AuthorizeFunc: method is nil but authorizer.Authorize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
		Roles []domain.UserRole
	}{Ctx: ctx, Token: token, Roles: roles}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, token, roles...)
}

func (mock *authorizerMock) AuthorizeCalls() []struct {
	Ctx   context.Context
	Token string
	Roles []domain.UserRole
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}
