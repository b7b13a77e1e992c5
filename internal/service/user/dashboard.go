package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
)

// dashboardListSize is the length of the recent and popular lists.
const dashboardListSize = 5

// Stats holds the site totals shown on the admin dashboard.
type Stats struct {
	TotalArticles     int
	PublishedArticles int
	DraftArticles     int
	TotalTopics       int
	TotalUsers        int
}

// Dashboard is the admin overview.
type Dashboard struct {
	Stats   Stats
	Recent  []domain.Article
	Popular []domain.Article
}

// Dashboard collects site totals together with the most recently published
// and the most viewed published articles.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	counts, err := s.articles.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Dashboard: article counts: %w", err)
	}

	topics, err := s.topics.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Dashboard: topic count: %w", err)
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Dashboard: user count: %w", err)
	}

	recent, err := s.topArticles(ctx, domain.SortByPublishedAt)
	if err != nil {
		return nil, fmt.Errorf("user.Dashboard: recent: %w", err)
	}

	popular, err := s.topArticles(ctx, domain.SortByViews)
	if err != nil {
		return nil, fmt.Errorf("user.Dashboard: popular: %w", err)
	}

	return &Dashboard{
		Stats: Stats{
			TotalArticles:     counts.Total,
			PublishedArticles: counts.Published,
			DraftArticles:     counts.Draft,
			TotalTopics:       topics,
			TotalUsers:        users,
		},
		Recent:  recent,
		Popular: popular,
	}, nil
}

// topArticles returns the first published articles ordered by field, descending.
func (s *Service) topArticles(ctx context.Context, field domain.ArticleSortField) ([]domain.Article, error) {
	q := article.BuildQuery(article.ListParams{
		Limit: dashboardListSize,
		Sort:  "-" + string(field),
	}, article.Defaults{Status: domain.ArticleStatusPublished.String()})

	articles, _, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return articles, nil
}
