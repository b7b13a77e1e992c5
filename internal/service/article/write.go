package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// Create stores a new article written by authorID.
// Empty slugs are derived from the titles; a slug collision fails with
// domain.ErrDuplicateSlug.
func (s *Service) Create(ctx context.Context, authorID uuid.UUID, input CreateInput) (*domain.Article, error) {
	now := time.Now().UTC()

	a := &domain.Article{
		ID:            uuid.New(),
		Title:         input.Title,
		Content:       input.Content,
		Slug:          input.Slug,
		Category:      input.Category,
		TopicID:       input.TopicID,
		AuthorID:      authorID,
		Status:        domain.ArticleStatusDraft,
		Tags:          input.Tags,
		FeaturedImage: input.FeaturedImage,
		Images:        input.Images,
		AudioURL:      input.AudioURL,
		VideoURL:      input.VideoURL,
		ReadTime:      input.ReadTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if a.ReadTime == 0 {
		a.ReadTime = domain.DefaultReadTime
	}
	if input.Status != "" {
		a.SetStatus(input.Status, now)
	}

	// Step 1: Normalize and validate
	normalizeArticle(a)
	if err := validateArticle(a); err != nil {
		return nil, err
	}
	if err := s.checkTopic(ctx, a.TopicID); err != nil {
		return nil, err
	}

	// Step 2: Derive slugs
	domain.ApplySlugs(a, nil)

	// Step 3: Persist
	created, err := s.articles.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}
	s.refreshTopicCounts(ctx, created.TopicID)

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", created.ID.String()),
		slog.String("author_id", authorID.String()),
		slog.String("slug", created.Slug.En))

	return created, nil
}

// Update applies a partial update. A slug left empty is derived again only
// for a language whose title changed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Article, error) {
	// Step 1: Load current state
	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	// Step 2: Merge
	next := *current
	input.apply(&next)
	if input.Status != nil {
		next.SetStatus(*input.Status, time.Now().UTC())
	}
	normalizeArticle(&next)
	if err := validateArticle(&next); err != nil {
		return nil, err
	}
	if input.TopicID != nil && !input.ClearTopic {
		if err := s.checkTopic(ctx, next.TopicID); err != nil {
			return nil, err
		}
	}

	// Step 3: Slugs follow the title change rule
	prevTitle := current.Title
	domain.ApplySlugs(&next, &prevTitle)

	// Step 4: Persist
	updated, err := s.articles.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}
	s.refreshTopicCounts(ctx, current.TopicID, updated.TopicID)

	s.log.InfoContext(ctx, "article updated", slog.String("article_id", id.String()))
	return updated, nil
}

// SetStatus moves an article to status. Entering published stamps the
// publication time.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ArticleStatus) (*domain.Article, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of draft, published, archived")
	}

	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.SetStatus: %w", err)
	}

	current.SetStatus(status, time.Now().UTC())
	updated, err := s.articles.UpdateStatus(ctx, id, current.Status, current.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("article.SetStatus: %w", err)
	}
	s.refreshTopicCounts(ctx, updated.TopicID)

	s.log.InfoContext(ctx, "article status changed",
		slog.String("article_id", id.String()),
		slog.String("status", status.String()))

	return updated, nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("article.Delete: %w", err)
	}
	s.refreshTopicCounts(ctx, current.TopicID)

	s.log.InfoContext(ctx, "article deleted", slog.String("article_id", id.String()))
	return nil
}

// checkTopic reports a validation error when topicID names no topic.
func (s *Service) checkTopic(ctx context.Context, topicID *uuid.UUID) error {
	if topicID == nil {
		return nil
	}
	if _, err := s.topics.GetByID(ctx, *topicID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("topic", "topic not found")
		}
		return fmt.Errorf("check topic: %w", err)
	}
	return nil
}
