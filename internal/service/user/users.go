package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// Self-service restrictions of UpdateUser. Both are domain.ErrValidation.
var (
	ErrSelfRoleChange   = fmt.Errorf("%w: cannot change own role", domain.ErrValidation)
	ErrSelfDeactivation = fmt.Errorf("%w: cannot deactivate own account", domain.ErrValidation)
)

// UpdateUserInput changes the access of an account. Nil fields are kept.
type UpdateUserInput struct {
	Role     *domain.UserRole
	IsActive *bool
}

// ListUsers returns every account, newest first.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// UpdateUser changes the role and active flag of user id on behalf of actorID.
// Admins cannot demote or deactivate themselves.
func (s *Service) UpdateUser(ctx context.Context, actorID, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	// Step 1: validate
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of admin, editor, viewer")
	}
	if actorID == id {
		if input.Role != nil && *input.Role != domain.UserRoleAdmin {
			return nil, ErrSelfRoleChange
		}
		if input.IsActive != nil && !*input.IsActive {
			return nil, ErrSelfDeactivation
		}
	}

	// Step 2: nothing to change
	if input.Role == nil && input.IsActive == nil {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateUser: %w", err)
		}
		return u, nil
	}

	// Step 3: persist
	u, err := s.users.UpdateAccess(ctx, id, input.Role, input.IsActive)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user access updated",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", id.String()),
		slog.String("role", u.Role.String()),
		slog.Bool("is_active", u.IsActive),
	)

	return u, nil
}
