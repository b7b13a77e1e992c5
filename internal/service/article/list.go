package article

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// latestCount is the size of the featured/latest listing.
const latestCount = 6

// List returns one page of articles for the public listing.
// Status defaults to published.
func (s *Service) List(ctx context.Context, p ListParams) (*domain.ArticlePage, error) {
	q := BuildQuery(p, Defaults{
		Status:   domain.ArticleStatusPublished.String(),
		Limit:    s.cfg.PageSize,
		MaxLimit: s.cfg.MaxPageSize,
		Sort:     "-" + string(domain.SortByCreatedAt),
	})
	return s.page(ctx, q, "article.List")
}

// AdminList returns one page of articles of any status.
func (s *Service) AdminList(ctx context.Context, p ListParams) (*domain.ArticlePage, error) {
	q := BuildQuery(p, Defaults{
		Limit:    s.cfg.AdminPageSize,
		MaxLimit: s.cfg.MaxPageSize,
		Sort:     "-" + string(domain.SortByCreatedAt),
	})
	return s.page(ctx, q, "article.AdminList")
}

// ByCategory returns the published articles of a category, newest published first.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Article, error) {
	q := BuildQuery(ListParams{
		Status:   domain.ArticleStatusPublished.String(),
		Category: category,
		Sort:     "-" + string(domain.SortByPublishedAt),
	}, Defaults{Limit: s.cfg.MaxPageSize, MaxLimit: s.cfg.MaxPageSize})
	// Topic references do not apply here: the path names a category.
	if q.Category != nil {
		q.Category.TopicID = nil
	}

	articles, _, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("article.ByCategory: %w", err)
	}
	return articles, nil
}

// Latest returns the most recently published articles.
func (s *Service) Latest(ctx context.Context) ([]domain.Article, error) {
	q := BuildQuery(ListParams{Limit: latestCount}, Defaults{
		Status: domain.ArticleStatusPublished.String(),
		Sort:   "-" + string(domain.SortByPublishedAt),
	})

	articles, _, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("article.Latest: %w", err)
	}
	return articles, nil
}

func (s *Service) page(ctx context.Context, q domain.ArticleQuery, op string) (*domain.ArticlePage, error) {
	articles, total, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &domain.ArticlePage{
		Articles: articles,
		Total:    total,
		Page:     pageOf(q),
		Limit:    q.Limit,
	}, nil
}
