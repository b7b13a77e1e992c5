package article

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	RefreshArticleCountFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RefreshArticleCount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID             sync.RWMutex
	lockRefreshArticleCount sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
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

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) RefreshArticleCount(ctx context.Context, id uuid.UUID) error {
	if mock.RefreshArticleCountFunc == nil {
		panic("topicRepoMock.RefreshArticleCountFunc: method is nil but topicRepo.RefreshArticleCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRefreshArticleCount.Lock()
	mock.calls.RefreshArticleCount = append(mock.calls.RefreshArticleCount, callInfo)
	mock.lockRefreshArticleCount.Unlock()
	return mock.RefreshArticleCountFunc(ctx, id)
}

func (mock *topicRepoMock) RefreshArticleCountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRefreshArticleCount.RLock()
	calls := mock.calls.RefreshArticleCount
	mock.lockRefreshArticleCount.RUnlock()
	return calls
}
