package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// GetByIdentifier resolves identifier as an article id first, then as an
// English or Yorùbá slug, and counts one view of the article found.
func (s *Service) GetByIdentifier(ctx context.Context, identifier string) (*domain.Article, error) {
	a, err := s.resolve(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, fmt.Errorf("article.GetByIdentifier: %w", err)
	}

	viewed, err := s.articles.IncrementViews(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("article.GetByIdentifier increment views: %w", err)
	}
	s.metrics.ArticleViewed()
	return viewed, nil
}

// Get returns an article by id without counting a view.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}
	return a, nil
}

func (s *Service) resolve(ctx context.Context, identifier string) (*domain.Article, error) {
	if identifier == "" {
		return nil, fmt.Errorf("article: %w", domain.ErrNotFound)
	}

	if id, err := uuid.Parse(identifier); err == nil {
		a, err := s.articles.GetByID(ctx, id)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	return s.articles.GetBySlug(ctx, strings.ToLower(identifier))
}
