package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
	"sync"
)

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	ListFunc            func(ctx context.Context, p article.ListParams) (*domain.ArticlePage, error)
	ByCategoryFunc      func(ctx context.Context, category string) ([]domain.Article, error)
	LatestFunc          func(ctx context.Context) ([]domain.Article, error)
	GetByIdentifierFunc func(ctx context.Context, identifier string) (*domain.Article, error)
	CreateFunc          func(ctx context.Context, authorID uuid.UUID, input article.CreateInput) (*domain.Article, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, input article.UpdateInput) (*domain.Article, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
			P   article.ListParams
		}
		ByCategory []struct {
			Ctx      context.Context
			Category string
		}
		Latest []struct {
			Ctx context.Context
		}
		GetByIdentifier []struct {
			Ctx        context.Context
			Identifier string
		}
		Create []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
			Input    article.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input article.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList            sync.RWMutex
	lockByCategory      sync.RWMutex
	lockLatest          sync.RWMutex
	lockGetByIdentifier sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *articleServiceMock) List(ctx context.Context, p article.ListParams) (*domain.ArticlePage, error) {
	if mock.ListFunc == nil {
		panic("articleServiceMock.ListFunc: method is nil but articleService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   article.ListParams
	}{Ctx: ctx, P: p}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, p)
}

func (mock *articleServiceMock) ListCalls() []struct {
	Ctx context.Context
	P   article.ListParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleServiceMock) ByCategory(ctx context.Context, category string) ([]domain.Article, error) {
	if mock.ByCategoryFunc == nil {
		panic("articleServiceMock.ByCategoryFunc: method is nil but articleService.ByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category string
	}{Ctx: ctx, Category: category}
	mock.lockByCategory.Lock()
	mock.calls.ByCategory = append(mock.calls.ByCategory, callInfo)
	mock.lockByCategory.Unlock()
	return mock.ByCategoryFunc(ctx, category)
}

func (mock *articleServiceMock) ByCategoryCalls() []struct {
	Ctx      context.Context
	Category string
} {
	mock.lockByCategory.RLock()
	calls := mock.calls.ByCategory
	mock.lockByCategory.RUnlock()
	return calls
}

func (mock *articleServiceMock) Latest(ctx context.Context) ([]domain.Article, error) {
	if mock.LatestFunc == nil {
		panic("articleServiceMock.LatestFunc: method is nil but articleService.Latest was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx)
}

func (mock *articleServiceMock) LatestCalls() []struct {
	Ctx context.Context
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *articleServiceMock) GetByIdentifier(ctx context.Context, identifier string) (*domain.Article, error) {
	if mock.GetByIdentifierFunc == nil {
		panic("articleServiceMock.GetByIdentifierFunc: method is nil but articleService.GetByIdentifier was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Identifier string
	}{Ctx: ctx, Identifier: identifier}
	mock.lockGetByIdentifier.Lock()
	mock.calls.GetByIdentifier = append(mock.calls.GetByIdentifier, callInfo)
	mock.lockGetByIdentifier.Unlock()
	return mock.GetByIdentifierFunc(ctx, identifier)
}

func (mock *articleServiceMock) GetByIdentifierCalls() []struct {
	Ctx        context.Context
	Identifier string
} {
	mock.lockGetByIdentifier.RLock()
	calls := mock.calls.GetByIdentifier
	mock.lockGetByIdentifier.RUnlock()
	return calls
}

func (mock *articleServiceMock) Create(ctx context.Context, authorID uuid.UUID, input article.CreateInput) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleServiceMock.CreateFunc: method is nil but articleService.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Input    article.CreateInput
	}{Ctx: ctx, AuthorID: authorID, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, authorID, input)
}

func (mock *articleServiceMock) CreateCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
	Input    article.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Update(ctx context.Context, id uuid.UUID, input article.UpdateInput) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleServiceMock.UpdateFunc: method is nil but articleService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input article.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *articleServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input article.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("articleServiceMock.DeleteFunc: method is nil but articleService.Delete was just called")
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

func (mock *articleServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
