package rest

import (
	"net/http"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/middleware"
)

// guard builds per-route authentication middleware.
type guard interface {
	Guard(roles ...domain.UserRole) middleware.Middleware
}

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Article *ArticleHandler
	Topic   *TopicHandler
	Admin   *AdminHandler
	Metrics http.Handler
}

// NewRouter registers all routes. loginLimit wraps the login endpoint only.
// The returned mux must be the handler the metrics middleware wraps.
func NewRouter(h Handlers, g guard, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	var (
		anyUser = g.Guard()
		admin   = g.Guard(domain.UserRoleAdmin)
		editors = g.Guard(domain.UserRoleAdmin, domain.UserRoleEditor)
	)
	guarded := func(mw middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return mw(fn)
	}

	// Probes and metrics
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /api/health", h.Health.API)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	// Auth
	mux.HandleFunc("POST /api/auth/init-admin", h.Auth.InitAdmin)
	mux.Handle("POST /api/auth/register", guarded(admin, h.Auth.Register))
	mux.Handle("POST /api/auth/login", guarded(loginLimit, h.Auth.Login))
	mux.Handle("GET /api/auth/me", guarded(anyUser, h.Auth.Me))
	mux.Handle("PUT /api/auth/profile", guarded(anyUser, h.Auth.UpdateProfile))
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Articles
	mux.HandleFunc("GET /api/articles", h.Article.List)
	mux.HandleFunc("GET /api/articles/category/{category}", h.Article.ByCategory)
	mux.HandleFunc("GET /api/articles/featured/latest", h.Article.Latest)
	mux.HandleFunc("GET /api/articles/{identifier}", h.Article.Get)
	mux.Handle("POST /api/articles", guarded(editors, h.Article.Create))
	mux.Handle("PUT /api/articles/{id}", guarded(editors, h.Article.Update))
	mux.Handle("DELETE /api/articles/{id}", guarded(admin, h.Article.Delete))

	// Topics
	mux.HandleFunc("GET /api/topics", h.Topic.List)
	mux.HandleFunc("GET /api/topics/stats/counts", h.Topic.Stats)
	mux.HandleFunc("GET /api/topics/{id}", h.Topic.Get)
	mux.HandleFunc("GET /api/topics/{id}/articles", h.Topic.Articles)
	mux.Handle("POST /api/topics", guarded(admin, h.Topic.Create))
	mux.Handle("PUT /api/topics/{id}", guarded(admin, h.Topic.Update))
	mux.Handle("DELETE /api/topics/{id}", guarded(admin, h.Topic.Delete))

	// Admin
	mux.Handle("GET /api/admin/dashboard", guarded(admin, h.Admin.Dashboard))
	mux.Handle("GET /api/admin/articles", guarded(admin, h.Admin.Articles))
	mux.Handle("GET /api/admin/articles/{id}", guarded(admin, h.Admin.Article))
	mux.Handle("PUT /api/admin/articles/{id}/status", guarded(admin, h.Admin.SetStatus))
	mux.Handle("GET /api/admin/users", guarded(admin, h.Admin.Users))
	mux.Handle("PUT /api/admin/users/{id}", guarded(admin, h.Admin.UpdateUser))
	mux.Handle("POST /api/admin/initialize", guarded(admin, h.Admin.Initialize))

	mux.HandleFunc("/api/", notFound)

	return mux
}

// notFound answers every unknown /api path.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "API endpoint "+r.URL.Path+" not found")
}
