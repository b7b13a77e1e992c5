package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// ListTopics returns topics in display order. ArticleCount carries the live
// number of published articles of each topic.
func (s *Service) ListTopics(ctx context.Context, input ListInput) ([]domain.Topic, error) {
	var filter domain.TopicFilter
	if input.FeaturedOnly {
		featured := true
		filter.Featured = &featured
	}
	if c := strings.TrimSpace(input.Category); c != "" {
		category := domain.Category(c)
		filter.Category = &category
	}

	topics, err := s.topics.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	counts, err := s.articles.PublishedCountsByTopic(ctx)
	if err != nil {
		return nil, fmt.Errorf("count topic articles: %w", err)
	}
	for i := range topics {
		topics[i].ArticleCount = counts[topics[i].ID]
	}

	return topics, nil
}

// Stats returns the number of published articles of every topic.
func (s *Service) Stats(ctx context.Context) ([]domain.TopicArticleCount, error) {
	topics, err := s.ListTopics(ctx, ListInput{})
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}

	stats := make([]domain.TopicArticleCount, 0, len(topics))
	for _, t := range topics {
		stats = append(stats, domain.TopicArticleCount{TopicID: t.ID, Name: t.Name, Count: t.ArticleCount})
	}
	return stats, nil
}
