package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	"github.com/heartmarshall/yoruba-science-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	InitAdmin(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input auth.UpdateProfileInput) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc  authService
	errs errorResponder
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		errs: errorResponder{
			log:      logger.With("handler", "auth"),
			notFound: "User not found",
			conflict: "User already exists with this email",
		},
	}
}

type registerRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Role              string  `json:"role"`
	YorubaProficiency *string `json:"yorubaProficiency"`
}

func (req registerRequest) input() auth.RegisterInput {
	in := auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	}
	if req.YorubaProficiency != nil {
		p := domain.Proficiency(*req.YorubaProficiency)
		in.Proficiency = &p
	}
	return in
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name              *string `json:"name"`
	YorubaProficiency *string `json:"yorubaProficiency"`
}

// InitAdmin handles POST /api/auth/init-admin.
func (h *AuthHandler) InitAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.InitAdmin(r.Context(), req.input())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "Admin user created successfully",
		"token":   result.Token,
		"user":    toUserResponse(result.User),
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), req.input())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    toUserResponse(result.User),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Please provide email and password")
			return
		}
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"token": result.Token,
		"user":  toUserResponse(result.User),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	user, err := h.svc.Me(r.Context(), userID)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"user": toUserResponse(user)})
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := auth.UpdateProfileInput{Name: req.Name}
	if req.YorubaProficiency != nil {
		p := domain.Proficiency(*req.YorubaProficiency)
		input.Proficiency = &p
	}

	user, err := h.svc.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Profile updated successfully",
		"user":    toUserResponse(user),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
