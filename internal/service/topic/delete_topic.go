package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// DeleteTopic deletes a topic that no article references.
// Returns a *domain.DependencyError carrying the number of articles otherwise.
func (s *Service) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.articles.CountByTopic(txCtx, id)
		if err != nil {
			return fmt.Errorf("count topic articles: %w", err)
		}
		if count > 0 {
			return &domain.DependencyError{Entity: "topic", Count: count}
		}

		if err := s.topics.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted", slog.String("topic_id", id.String()))
	return nil
}
