package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdateAccess(ctx context.Context, id uuid.UUID, role *domain.UserRole, isActive *bool) (*domain.User, error)
}

// articleRepo defines the article repository interface needed by user service.
type articleRepo interface {
	Counts(ctx context.Context) (domain.ArticleCounts, error)
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error)
}

// topicCounter defines the topic repository interface needed by user service.
type topicCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service implements the administrative user operations and the dashboard.
type Service struct {
	log      *slog.Logger
	users    userRepo
	articles articleRepo
	topics   topicCounter
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	articles articleRepo,
	topics topicCounter,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		articles: articles,
		topics:   topics,
	}
}
