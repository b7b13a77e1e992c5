package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// Authorize resolves a bearer token to a live, active user and checks the
// user's role against roles. An empty roles list admits any active user.
//
// Failures: ErrNoCredential (empty token), auth.ErrTokenInvalid,
// auth.ErrTokenExpired, ErrUnknownUser, ErrDeactivated, ErrForbidden.
// On success the user's last login is refreshed; a failed write there does not
// fail the call.
func (s *Service) Authorize(ctx context.Context, token string, roles ...domain.UserRole) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNoCredential
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("auth.Authorize get user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrDeactivated
	}

	// The live role wins over the role encoded in the token.
	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		return nil, domain.ErrForbidden
	}

	s.touchLastLogin(ctx, user)
	return user, nil
}
