package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
	"github.com/heartmarshall/yoruba-science-backend/pkg/ctxutil"
)

// articleService defines the minimal interface needed by ArticleHandler.
type articleService interface {
	List(ctx context.Context, p article.ListParams) (*domain.ArticlePage, error)
	ByCategory(ctx context.Context, category string) ([]domain.Article, error)
	Latest(ctx context.Context) ([]domain.Article, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Article, error)
	Create(ctx context.Context, authorID uuid.UUID, input article.CreateInput) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, input article.UpdateInput) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArticleHandler serves the public and editorial article endpoints.
type ArticleHandler struct {
	svc  articleService
	errs errorResponder
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		svc: svc,
		errs: errorResponder{
			log:      logger.With("handler", "article"),
			notFound: "Article not found",
			conflict: "Article with similar title already exists",
		},
	}
}

// List handles GET /api/articles.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), listParams(r.URL.Query()))
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	items, err := renderArticles(r.Context(), page.Articles)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"count":       len(items),
		"total":       page.Total,
		"pages":       page.Pages(),
		"currentPage": page.Page,
		"articles":    items,
	})
}

// ByCategory handles GET /api/articles/category/{category}.
func (h *ArticleHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	h.writeList(w, r, articles)
}

// Latest handles GET /api/articles/featured/latest.
func (h *ArticleHandler) Latest(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.Latest(r.Context())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	h.writeList(w, r, articles)
}

// Get handles GET /api/articles/{identifier}. The identifier is an ID or a
// slug in either language; every hit counts as a view.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeRenderedArticle(w, r, h.errs, http.StatusOK, "", a)
}

// Create handles POST /api/articles. The author is the caller.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req articleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Create(r.Context(), authorID, req.createInput())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeRenderedArticle(w, r, h.errs, http.StatusCreated, "Article created successfully", a)
}

// Update handles PUT /api/articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	var req articleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Update(r.Context(), id, req.updateInput())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeRenderedArticle(w, r, h.errs, http.StatusOK, "Article updated successfully", a)
}

// Delete handles DELETE /api/articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Article deleted successfully")
}

func (h *ArticleHandler) writeList(w http.ResponseWriter, r *http.Request, articles []domain.Article) {
	items, err := renderArticles(r.Context(), articles)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, envelope{"count": len(items), "articles": items})
}

// writeRenderedArticle writes {article[, message]} for a single article.
func writeRenderedArticle(w http.ResponseWriter, r *http.Request, errs errorResponder, status int, message string, a *domain.Article) {
	item, err := renderArticle(r.Context(), a)
	if err != nil {
		errs.respond(w, r, err)
		return
	}
	body := envelope{"article": item}
	if message != "" {
		body["message"] = message
	}
	writeSuccess(w, status, body)
}
