package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

func newAuthorsBatchFn(repo userRefRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserRef] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserRef] {
		refs, err := repo.GetRefsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.UserRef](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.UserRef, len(refs))
		for i := range refs {
			byID[refs[i].ID] = &refs[i]
		}

		return mapResults(keys, byID)
	}
}

func newTopicsBatchFn(repo topicRefRepo) dataloader.BatchFunc[uuid.UUID, *domain.TopicRef] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.TopicRef] {
		refs, err := repo.GetRefsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.TopicRef](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.TopicRef, len(refs))
		for i := range refs {
			byID[refs[i].ID] = &refs[i]
		}

		return mapResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order. Missing keys yield the
// zero value, a dangling reference renders as absent rather than failing.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
