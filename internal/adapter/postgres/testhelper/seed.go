package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role.
// The stored password hash is not a valid bcrypt hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Email, "not-a-hash", string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates a physics topic with a unique name.
func SeedTopic(t *testing.T, pool *pgxpool.Pool) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	topic := domain.Topic{
		ID:       uuid.New(),
		Name:     domain.Localized{Yo: "Ìmọ́lẹ̀ " + suffix, En: "Light " + suffix},
		Category: domain.CategoryPhysics,
		Color:    domain.DefaultTopicColor,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, name_yo, name_en, category, color) VALUES ($1, $2, $3, $4, $5)`,
		topic.ID, topic.Name.Yo, topic.Name.En, string(topic.Category), topic.Color,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedArticle creates an article by author with the given status and topic.
// Slugs are derived from a unique English title.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, topicID *uuid.UUID, status domain.ArticleStatus) domain.Article {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Article{
		ID:       uuid.New(),
		Title:    domain.Localized{Yo: "Àpilẹ̀kọ " + suffix, En: "Article " + suffix},
		Content:  domain.Localized{Yo: "Akoonu", En: "Content"},
		Category: domain.CategoryPhysics,
		TopicID:  topicID,
		AuthorID: authorID,
		Status:   status,
		ReadTime: domain.DefaultReadTime,
	}
	domain.ApplySlugs(&a, nil)
	if status == domain.ArticleStatusPublished {
		a.PublishedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, title_yo, title_en, content_yo, content_en, slug_yo, slug_en,
		                       category, topic_id, author_id, status, read_time, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.Title.Yo, a.Title.En, a.Content.Yo, a.Content.En, a.Slug.Yo, a.Slug.En,
		string(a.Category), a.TopicID, a.AuthorID, string(a.Status), a.ReadTime, a.PublishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert article: %v", err)
	}

	return a
}
