package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// topicRepo defines the topic repository interface needed by topic service.
type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// articleRepo defines the article repository interface needed by topic service.
type articleRepo interface {
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error)
	CountByTopic(ctx context.Context, topicID uuid.UUID) (int, error)
	PublishedCountsByTopic(ctx context.Context) (map[uuid.UUID]int, error)
}

// txManager defines the transaction manager interface needed by topic service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements topic operations.
type Service struct {
	log      *slog.Logger
	topics   topicRepo
	articles articleRepo
	tx       txManager
	cfg      config.ContentConfig
}

// NewService creates a new topic service instance.
func NewService(
	logger *slog.Logger,
	topics topicRepo,
	articles articleRepo,
	tx txManager,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "topic"),
		topics:   topics,
		articles: articles,
		tx:       tx,
		cfg:      cfg,
	}
}
