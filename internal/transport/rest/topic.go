package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/article"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	ListTopics(ctx context.Context, input topic.ListInput) ([]domain.Topic, error)
	Stats(ctx context.Context) ([]domain.TopicArticleCount, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*topic.Detail, error)
	TopicArticles(ctx context.Context, id uuid.UUID, p article.ListParams) (*domain.Topic, *domain.ArticlePage, error)
	CreateTopic(ctx context.Context, input topic.CreateInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, id uuid.UUID, input topic.UpdateInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, id uuid.UUID) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc  topicService
	errs errorResponder
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		svc: svc,
		errs: errorResponder{
			log:      logger.With("handler", "topic"),
			notFound: "Topic not found",
			conflict: "Topic already exists",
		},
	}
}

type topicStat struct {
	TopicID string           `json:"topicId"`
	Name    domain.Localized `json:"name"`
	Count   int              `json:"count"`
}

type topicSummary struct {
	ID          string           `json:"id"`
	Name        domain.Localized `json:"name"`
	Description domain.Localized `json:"description"`
}

// List handles GET /api/topics?featured=true&category=physics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := topic.ListInput{FeaturedOnly: strings.EqualFold(q.Get("featured"), "true")}
	if c := q.Get("category"); !strings.EqualFold(c, "all") {
		input.Category = c
	}

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"count":  len(topics),
		"topics": toTopicResponses(topics),
	})
}

// Stats handles GET /api/topics/stats/counts.
func (h *TopicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Stats(r.Context())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	stats := make([]topicStat, len(counts))
	for i, c := range counts {
		stats[i] = topicStat{TopicID: c.TopicID.String(), Name: c.Name, Count: c.Count}
	}
	writeSuccess(w, http.StatusOK, envelope{"stats": stats})
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	detail, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	items, err := renderArticles(r.Context(), detail.Articles)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"topic": toTopicResponse(detail.Topic),
		"articles": envelope{
			"count": len(items),
			"items": items,
		},
	})
}

// Articles handles GET /api/topics/{id}/articles?page=&limit=&sort=.
func (h *TopicHandler) Articles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	t, page, err := h.svc.TopicArticles(r.Context(), id, listParams(r.URL.Query()))
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
		"topic": topicSummary{ID: t.ID.String(), Name: t.Name, Description: t.Description},
		"articles": envelope{
			"count":       len(items),
			"total":       page.Total,
			"pages":       page.Pages(),
			"currentPage": page.Page,
			"items":       items,
		},
	})
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := topic.CreateInput{
		Name:          deref(req.Name),
		Category:      domain.Category(deref(req.Category)),
		Description:   deref(req.Description),
		Icon:          deref(req.Icon),
		Color:         deref(req.Color),
		ParentTopicID: req.ParentTopic.ID,
		IsFeatured:    deref(req.IsFeatured),
		Order:         deref(req.Order),
	}

	t, err := h.svc.CreateTopic(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{
		"message": "Topic created successfully",
		"topic":   toTopicResponse(t),
	})
}

// Update handles PUT /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	var req topicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := topic.UpdateInput{
		Name:          req.Name,
		Description:   req.Description,
		Icon:          req.Icon,
		Color:         req.Color,
		ParentTopicID: req.ParentTopic.ID,
		ClearParent:   req.ParentTopic.Clear,
		IsFeatured:    req.IsFeatured,
		Order:         req.Order,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		input.Category = &c
	}

	t, err := h.svc.UpdateTopic(r.Context(), id, input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Topic updated successfully",
		"topic":   toTopicResponse(t),
	})
}

// Delete handles DELETE /api/topics/{id}. Topics that still have articles
// are refused.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, h.errs.notFound)
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		h.errs.respond(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Topic deleted successfully")
}
