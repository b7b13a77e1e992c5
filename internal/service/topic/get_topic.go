package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
)

// latestArticles is the number of articles shown with a topic.
const latestArticles = 10

// Detail is a topic together with its most recently published articles.
type Detail struct {
	Topic    *domain.Topic
	Articles []domain.Article
}

// GetTopic returns a topic and its latest published articles.
func (s *Service) GetTopic(ctx context.Context, id uuid.UUID) (*Detail, error) {
	t, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	q := s.topicQuery(id, article.ListParams{Limit: latestArticles})
	articles, _, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get topic articles: %w", err)
	}

	return &Detail{Topic: t, Articles: articles}, nil
}

// TopicArticles returns one page of the published articles of a topic,
// newest published first.
func (s *Service) TopicArticles(ctx context.Context, id uuid.UUID, p article.ListParams) (*domain.Topic, *domain.ArticlePage, error) {
	t, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get topic: %w", err)
	}

	q := s.topicQuery(id, article.ListParams{Page: p.Page, Limit: p.Limit, Sort: p.Sort})
	articles, total, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("list topic articles: %w", err)
	}

	return t, &domain.ArticlePage{
		Articles: articles,
		Total:    total,
		Page:     q.Offset/q.Limit + 1,
		Limit:    q.Limit,
	}, nil
}

// topicQuery builds the published-articles query of one topic.
func (s *Service) topicQuery(id uuid.UUID, p article.ListParams) domain.ArticleQuery {
	p.Topic = id.String()
	p.Status = domain.ArticleStatusPublished.String()
	return article.BuildQuery(p, article.Defaults{
		Limit:    s.cfg.TopicPageSize,
		MaxLimit: s.cfg.MaxPageSize,
		Sort:     "-" + string(domain.SortByPublishedAt),
	})
}
