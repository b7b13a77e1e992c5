// Package dataloader provides per-request DataLoaders that batch the author
// and topic lookups needed to render article lists into one query each.
// DataLoaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRefRepo interface {
	GetRefsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserRef, error)
}

type topicRefRepo interface {
	GetRefsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.TopicRef, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User  userRefRepo
	Topic topicRefRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	AuthorByID *dataloader.Loader[uuid.UUID, *domain.UserRef]
	TopicByID  *dataloader.Loader[uuid.UUID, *domain.TopicRef]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AuthorByID: newLoader(newAuthorsBatchFn(repos.User)),
		TopicByID:  newLoader(newTopicsBatchFn(repos.Topic)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
