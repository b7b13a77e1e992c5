package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/metrics"
)

// Login authenticates a user with email + password.
// Returns ErrBadLogin if the email is unknown or the password is wrong, and
// ErrDeactivated if the account is disabled.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.LoginAttempt(metrics.LoginFailure)
			return nil, domain.ErrBadLogin
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Reject disabled accounts
	if !user.IsActive {
		s.metrics.LoginAttempt(metrics.LoginInactive)
		return nil, domain.ErrDeactivated
	}

	// Step 4: Verify password
	ok, err := auth.ComparePassword(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if !ok {
		s.metrics.LoginAttempt(metrics.LoginFailure)
		return nil, domain.ErrBadLogin
	}
	user.PasswordHash = ""

	// Step 5: Record login and issue token
	s.touchLastLogin(ctx, user)

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.metrics.LoginAttempt(metrics.LoginSuccess)
	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
