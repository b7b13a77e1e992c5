package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// ErrAdminExists is returned by InitAdmin once an administrator exists.
var ErrAdminExists = fmt.Errorf("%w: admin already exists", domain.ErrValidation)

// Register creates a new password account with the requested role.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Step 1: Normalize and validate input
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Create user. Email uniqueness is enforced by a DB constraint.
	user, err := s.createUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 3: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return result, nil
}

// InitAdmin creates the first administrator. It fails with ErrAdminExists
// when any admin account is already present.
func (s *Service) InitAdmin(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Step 1: Refuse once bootstrapped
	exists, err := s.users.ExistsWithRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.InitAdmin check admin: %w", err)
	}
	if exists {
		return nil, ErrAdminExists
	}

	// Step 2: Validate input with the admin defaults applied
	fluent := domain.ProficiencyFluent
	input.Role = domain.UserRoleAdmin
	if input.Proficiency == nil {
		input.Proficiency = &fluent
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 3: Create admin
	user, err := s.createUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.InitAdmin: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.InitAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin initialized",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) createUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Proficiency:  input.Proficiency,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
