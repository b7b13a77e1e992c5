package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsWithRole(ctx context.Context, role domain.UserRole) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name *string, proficiency *domain.Proficiency) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// tokenManager defines the session token interface needed by auth service.
type tokenManager interface {
	Issue(userID uuid.UUID, role domain.UserRole) (string, error)
	Verify(token string) (auth.Claims, error)
}

// loginObserver records login outcomes.
type loginObserver interface {
	LoginAttempt(result string)
}

// Service implements authentication and session operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	tokens  tokenManager
	metrics loginObserver
	cfg     config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	metrics loginObserver,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		tokens:  tokens,
		metrics: metrics,
		cfg:     cfg,
	}
}

// issueToken signs a session token for user and wraps both into an AuthResult.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// touchLastLogin records the login time. Failures are logged and swallowed.
func (s *Service) touchLastLogin(ctx context.Context, user *domain.User) {
	now := time.Now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.WarnContext(ctx, "update last login failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	user.LastLoginAt = &now
}
