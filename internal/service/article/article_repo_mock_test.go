package article

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"sync"
	"time"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*domain.Article, error)
	ListFunc           func(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error)
	CreateFunc         func(ctx context.Context, a *domain.Article) (*domain.Article, error)
	UpdateFunc         func(ctx context.Context, a *domain.Article) (*domain.Article, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.ArticleStatus, publishedAt *time.Time) (*domain.Article, error)
	IncrementViewsFunc func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		List []struct {
			Ctx context.Context
			Q   domain.ArticleQuery
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Article
		}
		Update []struct {
			Ctx context.Context
			A   *domain.Article
		}
		UpdateStatus []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Status      domain.ArticleStatus
			PublishedAt *time.Time
		}
		IncrementViews []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockGetBySlug      sync.RWMutex
	lockList           sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdateStatus   sync.RWMutex
	lockIncrementViews sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *articleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("articleRepoMock.GetByIDFunc: method is nil but articleRepo.GetByID was just called")
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

func (mock *articleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *articleRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if mock.GetBySlugFunc == nil {
		panic("articleRepoMock.GetBySlugFunc: method is nil but articleRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *articleRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *articleRepoMock) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ArticleQuery
	}{Ctx: ctx, Q: q}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, q)
}

func (mock *articleRepoMock) ListCalls() []struct {
	Ctx context.Context
	Q   domain.ArticleQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleRepoMock) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Article
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Article
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleRepoMock) Update(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleRepoMock.UpdateFunc: method is nil but articleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Article
	}{Ctx: ctx, A: a}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *articleRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.Article
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *articleRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ArticleStatus, publishedAt *time.Time) (*domain.Article, error) {
	if mock.UpdateStatusFunc == nil {
		panic("articleRepoMock.UpdateStatusFunc: method is nil but articleRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		Status      domain.ArticleStatus
		PublishedAt *time.Time
	}{Ctx: ctx, ID: id, Status: status, PublishedAt: publishedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, publishedAt)
}

func (mock *articleRepoMock) UpdateStatusCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	Status      domain.ArticleStatus
	PublishedAt *time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *articleRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.IncrementViewsFunc == nil {
		panic("articleRepoMock.IncrementViewsFunc: method is nil but articleRepo.IncrementViews was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementViews.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, callInfo)
	mock.lockIncrementViews.Unlock()
	return mock.IncrementViewsFunc(ctx, id)
}

func (mock *articleRepoMock) IncrementViewsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementViews.RLock()
	calls := mock.calls.IncrementViews
	mock.lockIncrementViews.RUnlock()
	return calls
}

func (mock *articleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("articleRepoMock.DeleteFunc: method is nil but articleRepo.Delete was just called")
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

func (mock *articleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
