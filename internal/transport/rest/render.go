package rest

import (
	"context"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/dataloader"
)

// renderArticles converts articles to responses, populating authors and
// topics through the request's loaders.
func renderArticles(ctx context.Context, articles []domain.Article) ([]articleResponse, error) {
	refs, err := dataloader.FromContext(ctx).LoadArticleRefs(ctx, articles...)
	if err != nil {
		return nil, err
	}
	out := make([]articleResponse, len(articles))
	for i := range articles {
		out[i] = toArticleResponse(&articles[i], refs)
	}
	return out, nil
}

func renderArticle(ctx context.Context, a *domain.Article) (articleResponse, error) {
	out, err := renderArticles(ctx, []domain.Article{*a})
	if err != nil {
		return articleResponse{}, err
	}
	return out[0], nil
}
