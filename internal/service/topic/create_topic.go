package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// CreateTopic creates a new topic.
func (s *Service) CreateTopic(ctx context.Context, input CreateInput) (*domain.Topic, error) {
	now := time.Now().UTC()
	t := &domain.Topic{
		ID:            uuid.New(),
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		Icon:          input.Icon,
		Color:         input.Color,
		ParentTopicID: input.ParentTopicID,
		IsFeatured:    input.IsFeatured,
		Order:         input.Order,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	normalizeTopic(t)
	if err := validateTopic(t); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, t.ParentTopicID); err != nil {
		return nil, err
	}

	created, err := s.topics.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", created.ID.String()),
		slog.String("name", created.Name.En),
	)

	return created, nil
}

// checkParent reports a validation error when parentID names no topic.
func (s *Service) checkParent(ctx context.Context, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.topics.GetByID(ctx, *parentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("parentTopic", "topic not found")
		}
		return fmt.Errorf("get parent topic: %w", err)
	}
	return nil
}
