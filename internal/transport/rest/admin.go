package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/user"
	"github.com/heartmarshall/yoruba-science-backend/pkg/ctxutil"
)

// userAdminService defines the user management operations needed by AdminHandler.
type userAdminService interface {
	Dashboard(ctx context.Context) (*user.Dashboard, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, actorID, id uuid.UUID, input user.UpdateUserInput) (*domain.User, error)
}

// articleAdminService defines the article moderation operations needed by AdminHandler.
type articleAdminService interface {
	AdminList(ctx context.Context, p article.ListParams) (*domain.ArticlePage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ArticleStatus) (*domain.Article, error)
}

// adminBootstrapper creates the first administrator.
type adminBootstrapper interface {
	InitAdmin(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// AdminHandler serves the /api/admin endpoints.
type AdminHandler struct {
	users     userAdminService
	articles  articleAdminService
	bootstrap adminBootstrapper

	articleErrs errorResponder
	userErrs    errorResponder
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, articles articleAdminService, bootstrap adminBootstrapper, logger *slog.Logger) *AdminHandler {
	log := logger.With("handler", "admin")
	return &AdminHandler{
		users:       users,
		articles:    articles,
		bootstrap:   bootstrap,
		articleErrs: errorResponder{log: log, notFound: "Article not found", conflict: "Article with similar title already exists"},
		userErrs:    errorResponder{log: log, notFound: "User not found", conflict: "User already exists with this email"},
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type userAccessRequest struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

type dashboardStats struct {
	TotalArticles     int `json:"totalArticles"`
	PublishedArticles int `json:"publishedArticles"`
	DraftArticles     int `json:"draftArticles"`
	TotalTopics       int `json:"totalTopics"`
	TotalUsers        int `json:"totalUsers"`
}

type pagination struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.users.Dashboard(r.Context())
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}

	recent, err := renderArticles(r.Context(), d.Recent)
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}
	popular, err := renderArticles(r.Context(), d.Popular)
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"stats": dashboardStats{
			TotalArticles:     d.Stats.TotalArticles,
			PublishedArticles: d.Stats.PublishedArticles,
			DraftArticles:     d.Stats.DraftArticles,
			TotalTopics:       d.Stats.TotalTopics,
			TotalUsers:        d.Stats.TotalUsers,
		},
		"recentArticles":  recent,
		"popularArticles": popular,
	})
}

// Articles handles GET /api/admin/articles.
func (h *AdminHandler) Articles(w http.ResponseWriter, r *http.Request) {
	page, err := h.articles.AdminList(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}

	items, err := renderArticles(r.Context(), page.Articles)
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"articles": items,
		"pagination": pagination{
			Total:       page.Total,
			Pages:       page.Pages(),
			CurrentPage: page.Page,
			Limit:       page.Limit,
		},
	})
}

// Article handles GET /api/admin/articles/{id}. Views are not counted.
func (h *AdminHandler) Article(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.articleErrs.notFound)
		return
	}

	a, err := h.articles.Get(r.Context(), id)
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}
	writeRenderedArticle(w, r, h.articleErrs, http.StatusOK, "", a)
}

// SetStatus handles PUT /api/admin/articles/{id}/status.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.articleErrs.notFound)
		return
	}

	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status := domain.ArticleStatus(req.Status)
	if !status.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	a, err := h.articles.SetStatus(r.Context(), id, status)
	if err != nil {
		h.articleErrs.respond(w, r, err)
		return
	}
	writeRenderedArticle(w, r, h.articleErrs, http.StatusOK, fmt.Sprintf("Article %s successfully", status), a)
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.userErrs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"count": len(users),
		"users": toUserResponses(users),
	})
}

// UpdateUser handles PUT /api/admin/users/{id}.
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.userErrs.notFound)
		return
	}

	var req userAccessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := user.UpdateUserInput{IsActive: req.IsActive}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		input.Role = &role
	}

	u, err := h.users.UpdateUser(r.Context(), actorID, id, input)
	if err != nil {
		h.userErrs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "User updated successfully",
		"user":    toUserResponse(u),
	})
}

// Initialize handles POST /api/admin/initialize. It behaves like
// init-admin but returns no token.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.bootstrap.InitAdmin(r.Context(), req.input())
	if err != nil {
		h.userErrs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "Admin user created successfully",
		"user":    toUserResponse(result.User),
	})
}
