package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/pkg/ctxutil"
)

type authorizer interface {
	Authorize(ctx context.Context, token string, roles ...domain.UserRole) (*domain.User, error)
}

// Authenticator turns bearer tokens into users for guarded routes.
type Authenticator struct {
	authz authorizer
	log   *slog.Logger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(authz authorizer, logger *slog.Logger) *Authenticator {
	return &Authenticator{authz: authz, log: logger.With("middleware", "auth")}
}

// Guard returns middleware that admits only requests carrying a valid token
// of an active user. When roles are given the user must hold one of them.
// The user is stored in the request context for the handler.
func (a *Authenticator) Guard(roles ...domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.authz.Authorize(r.Context(), extractBearerToken(r), roles...)
			if err != nil {
				a.reject(w, r, err)
				return
			}
			recordUser(w, user.ID.String())
			ctx := ctxutil.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
	case errors.Is(err, auth.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "Token has expired")
	case errors.Is(err, domain.ErrUnknownUser):
		writeError(w, http.StatusUnauthorized, "Invalid token. User not found.")
	case errors.Is(err, domain.ErrDeactivated):
		writeError(w, http.StatusUnauthorized, "Account is deactivated.")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Insufficient permission for this action")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid token.")
	default:
		a.log.ErrorContext(r.Context(), "authorize", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
