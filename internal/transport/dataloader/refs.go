package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// ArticleRefs holds the authors and topics referenced by a set of articles.
// Dangling references are absent from the maps.
type ArticleRefs struct {
	Authors map[uuid.UUID]*domain.UserRef
	Topics  map[uuid.UUID]*domain.TopicRef
}

// Author returns the author of a, or nil.
func (r ArticleRefs) Author(a *domain.Article) *domain.UserRef {
	return r.Authors[a.AuthorID]
}

// Topic returns the topic of a, or nil.
func (r ArticleRefs) Topic(a *domain.Article) *domain.TopicRef {
	if a.TopicID == nil {
		return nil
	}
	return r.Topics[*a.TopicID]
}

// LoadArticleRefs resolves the authors and topics of articles. All keys are
// queued before any thunk is awaited, so each kind costs one batch.
func (l *Loaders) LoadArticleRefs(ctx context.Context, articles ...domain.Article) (ArticleRefs, error) {
	authors := make(map[uuid.UUID]dataloader.Thunk[*domain.UserRef])
	topics := make(map[uuid.UUID]dataloader.Thunk[*domain.TopicRef])

	for i := range articles {
		a := &articles[i]
		if _, ok := authors[a.AuthorID]; !ok {
			authors[a.AuthorID] = l.AuthorByID.Load(ctx, a.AuthorID)
		}
		if a.TopicID != nil {
			if _, ok := topics[*a.TopicID]; !ok {
				topics[*a.TopicID] = l.TopicByID.Load(ctx, *a.TopicID)
			}
		}
	}

	refs := ArticleRefs{
		Authors: make(map[uuid.UUID]*domain.UserRef, len(authors)),
		Topics:  make(map[uuid.UUID]*domain.TopicRef, len(topics)),
	}
	for id, thunk := range authors {
		ref, err := thunk()
		if err != nil {
			return ArticleRefs{}, fmt.Errorf("dataloader: load author: %w", err)
		}
		if ref != nil {
			refs.Authors[id] = ref
		}
	}
	for id, thunk := range topics {
		ref, err := thunk()
		if err != nil {
			return ArticleRefs{}, fmt.Errorf("dataloader: load topic: %w", err)
		}
		if ref != nil {
			refs.Topics[id] = ref
		}
	}
	return refs, nil
}
