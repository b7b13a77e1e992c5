package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// UpdateTopic applies a partial update to a topic.
func (s *Service) UpdateTopic(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Topic, error) {
	current, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	next := *current
	input.apply(&next)
	normalizeTopic(&next)
	if err := validateTopic(&next); err != nil {
		return nil, err
	}
	if input.ParentTopicID != nil && !input.ClearParent {
		if err := s.checkParent(ctx, next.ParentTopicID); err != nil {
			return nil, err
		}
	}

	updated, err := s.topics.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated", slog.String("topic_id", id.String()))
	return updated, nil
}
