// Package topic implements the Topic repository using PostgreSQL.
package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const table = "topics"

var columns = []string{
	"id", "name_yo", "name_en", "category", "description_yo", "description_en",
	"icon", "color", "parent_topic_id", "article_count", "is_featured", "sort_order",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	t, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// List returns topics matching f ordered by display order.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error) {
	query := postgres.Builder.Select(columns...).From(table).OrderBy("sort_order ASC", "id ASC")
	if f.Featured != nil {
		query = query.Where(squirrel.Eq{"is_featured": *f.Featured})
	}
	if f.Category != nil {
		query = query.Where(squirrel.Eq{"category": f.Category.String()})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Topic, error) {
		return scanTopic(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if topics == nil {
		topics = []domain.Topic{}
	}
	return topics, nil
}

// GetRefsByIDs returns the display projection of the given topics (batch for DataLoader).
func (r *Repo) GetRefsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.TopicRef, error) {
	if len(ids) == 0 {
		return []domain.TopicRef{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`SELECT id, name_yo, name_en, icon, color FROM topics WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get topic refs: %w", err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TopicRef, error) {
		var ref domain.TopicRef
		err := row.Scan(&ref.ID, &ref.Name.Yo, &ref.Name.En, &ref.Icon, &ref.Color)
		return ref, err
	})
	if err != nil {
		return nil, fmt.Errorf("get topic refs: %w", err)
	}
	return refs, nil
}

// Count returns the number of topics.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM topics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
// Returns domain.ErrNotFound if the parent topic does not exist.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query := postgres.Builder.
		Insert(table).
		Columns(
			"id", "name_yo", "name_en", "category", "description_yo", "description_en",
			"icon", "color", "parent_topic_id", "is_featured", "sort_order",
		).
		Values(
			t.ID, t.Name.Yo, t.Name.En, t.Category.String(), t.Description.Yo, t.Description.En,
			t.Icon, t.Color, t.ParentTopicID, t.IsFeatured, t.Order,
		).
		Suffix(returning)

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return created, nil
}

// Update overwrites every mutable field of the topic with t's values.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"name_yo":         t.Name.Yo,
			"name_en":         t.Name.En,
			"category":        t.Category.String(),
			"description_yo":  t.Description.Yo,
			"description_en":  t.Description.En,
			"icon":            t.Icon,
			"color":           t.Color,
			"parent_topic_id": t.ParentTopicID,
			"is_featured":     t.IsFeatured,
			"sort_order":      t.Order,
		}).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix(returning)

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return updated, nil
}

// RefreshArticleCount recomputes the cached number of published articles of a topic.
func (r *Repo) RefreshArticleCount(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE topics
		 SET article_count = (SELECT count(*) FROM articles WHERE topic_id = $1 AND status = 'published')
		 WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	return nil
}

// Delete removes a topic. Articles are NOT affected.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Topic, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTopic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTopic(row pgx.Row) (domain.Topic, error) {
	var (
		t        domain.Topic
		category string
	)
	err := row.Scan(
		&t.ID, &t.Name.Yo, &t.Name.En, &category, &t.Description.Yo, &t.Description.En,
		&t.Icon, &t.Color, &t.ParentTopicID, &t.ArticleCount, &t.IsFeatured, &t.Order,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Topic{}, err
	}
	t.Category = domain.Category(category)
	return t, nil
}
