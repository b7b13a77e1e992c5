package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
	"time"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	ExistsWithRoleFunc func(ctx context.Context, role domain.UserRole) (bool, error)
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, id uuid.UUID, name *string, proficiency *domain.Proficiency) (*domain.User, error)
	TouchLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ExistsWithRole []struct {
			Ctx  context.Context
			Role domain.UserRole
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		UpdateProfile []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Name        *string
			Proficiency *domain.Proficiency
		}
		TouchLastLogin []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockExistsWithRole sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdateProfile  sync.RWMutex
	lockTouchLastLogin sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsWithRole(ctx context.Context, role domain.UserRole) (bool, error) {
	if mock.ExistsWithRoleFunc == nil {
		panic("userRepoMock.ExistsWithRoleFunc: method is nil but userRepo.ExistsWithRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role domain.UserRole
	}{Ctx: ctx, Role: role}
	mock.lockExistsWithRole.Lock()
	mock.calls.ExistsWithRole = append(mock.calls.ExistsWithRole, callInfo)
	mock.lockExistsWithRole.Unlock()
	return mock.ExistsWithRoleFunc(ctx, role)
}

func (mock *userRepoMock) ExistsWithRoleCalls() []struct {
	Ctx  context.Context
	Role domain.UserRole
} {
	mock.lockExistsWithRole.RLock()
	calls := mock.calls.ExistsWithRole
	mock.lockExistsWithRole.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, proficiency *domain.Proficiency) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		Name        *string
		Proficiency *domain.Proficiency
	}{Ctx: ctx, ID: id, Name: name, Proficiency: proficiency}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, name, proficiency)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	Name        *string
	Proficiency *domain.Proficiency
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastLoginFunc == nil {
		panic("userRepoMock.TouchLastLoginFunc: method is nil but userRepo.TouchLastLogin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockTouchLastLogin.Lock()
	mock.calls.TouchLastLogin = append(mock.calls.TouchLastLogin, callInfo)
	mock.lockTouchLastLogin.Unlock()
	return mock.TouchLastLoginFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLastLoginCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockTouchLastLogin.RLock()
	calls := mock.calls.TouchLastLogin
	mock.lockTouchLastLogin.RUnlock()
	return calls
}
