package auth

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc  func(userID uuid.UUID, role domain.UserRole) (string, error)
	VerifyFunc func(token string) (auth.Claims, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
			Role   domain.UserRole
		}
		Verify []struct {
			Token string
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenManagerMock) Issue(userID uuid.UUID, role domain.UserRole) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   domain.UserRole
	}{UserID: userID, Role: role}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID, role)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	UserID uuid.UUID
	Role   domain.UserRole
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Verify(token string) (auth.Claims, error) {
	if mock.VerifyFunc == nil {
		panic("tokenManagerMock.VerifyFunc: method is nil but tokenManager.Verify was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenManagerMock) VerifyCalls() []struct {
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
