package topic

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListFunc    func(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error)
	CreateFunc  func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	UpdateFunc  func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.TopicFilter
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		Update []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *topicRepoMock) List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TopicFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *topicRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TopicFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{Ctx: ctx, T: t}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
