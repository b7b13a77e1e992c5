// Package article implements article listing, retrieval and editing.
package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// articleRepo defines the article repository interface needed by article service.
type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error)
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) (*domain.Article, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ArticleStatus, publishedAt *time.Time) (*domain.Article, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// topicRepo defines the topic operations needed by article service.
type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	RefreshArticleCount(ctx context.Context, id uuid.UUID) error
}

// viewObserver records article views.
type viewObserver interface {
	ArticleViewed()
}

// Service implements article operations.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	topics   topicRepo
	metrics  viewObserver
	cfg      config.ContentConfig
}

// NewService creates a new article service instance.
func NewService(
	logger *slog.Logger,
	articles articleRepo,
	topics topicRepo,
	metrics viewObserver,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
		topics:   topics,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// refreshTopicCounts recomputes the cached article count of every given topic.
// Failures are logged; the cache is advisory.
func (s *Service) refreshTopicCounts(ctx context.Context, ids ...*uuid.UUID) {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		if err := s.topics.RefreshArticleCount(ctx, *id); err != nil {
			s.log.WarnContext(ctx, "refresh topic article count failed",
				slog.String("topic_id", id.String()),
				slog.String("error", err.Error()))
		}
	}
}
