package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/dataloader"
	"github.com/heartmarshall/yoruba-science-backend/pkg/ctxutil"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out article_service_mock_test.go -pkg rest . articleService
//go:generate moq -out topic_service_mock_test.go -pkg rest . topicService
//go:generate moq -out user_admin_service_mock_test.go -pkg rest . userAdminService
//go:generate moq -out article_admin_service_mock_test.go -pkg rest . articleAdminService
//go:generate moq -out admin_bootstrapper_mock_test.go -pkg rest . adminBootstrapper

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubUserRefs struct{ refs []domain.UserRef }

func (s stubUserRefs) GetRefsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.UserRef, error) {
	return filterRefs(s.refs, ids, func(r domain.UserRef) uuid.UUID { return r.ID }), nil
}

type stubTopicRefs struct{ refs []domain.TopicRef }

func (s stubTopicRefs) GetRefsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.TopicRef, error) {
	return filterRefs(s.refs, ids, func(r domain.TopicRef) uuid.UUID { return r.ID }), nil
}

func filterRefs[T any](refs []T, ids []uuid.UUID, key func(T) uuid.UUID) []T {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []T
	for _, r := range refs {
		if want[key(r)] {
			out = append(out, r)
		}
	}
	return out
}

// newRequest builds a request whose context carries loaders over the given
// refs and, when u is non-nil, an authenticated user.
func newRequest(method, target, body string, u *domain.User, users []domain.UserRef, topics []domain.TopicRef) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)

	ctx := dataloader.WithLoaders(req.Context(), dataloader.NewLoaders(&dataloader.Repos{
		User:  stubUserRefs{refs: users},
		Topic: stubTopicRefs{refs: topics},
	}))
	if u != nil {
		ctx = ctxutil.WithUser(ctx, u)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != message {
		t.Errorf("error = %q, want %q", body["error"], message)
	}
}

func testUser(role domain.UserRole) *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Name:      "Adé",
		Email:     "ade@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testArticle(authorID uuid.UUID, topicID *uuid.UUID) domain.Article {
	return domain.Article{
		ID:       uuid.New(),
		Title:    domain.Localized{Yo: "Bí Ìmọ́lẹ̀ Ṣe Ń Ṣiṣẹ́", En: "How Light Works"},
		Content:  domain.Localized{Yo: "àkóónú", En: "content"},
		Slug:     domain.Localized{Yo: "bi-imole-se-n-sise", En: "how-light-works"},
		Category: domain.CategoryPhysics,
		TopicID:  topicID,
		AuthorID: authorID,
		Status:   domain.ArticleStatusPublished,
		ReadTime: domain.DefaultReadTime,
	}
}
