// Package article implements the Article repository using PostgreSQL.
package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const table = "articles"

// Unique constraints on the slug columns (see migrations).
const (
	constraintSlugYo = "ux_articles_slug_yo"
	constraintSlugEn = "ux_articles_slug_en"
)

var columns = []string{
	"id", "title_yo", "title_en", "content_yo", "content_en", "slug_yo", "slug_en",
	"category", "topic_id", "author_id", "status", "views", "tags",
	"featured_image", "images", "audio_url", "video_url", "read_time",
	"published_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an article by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// GetBySlug returns the article whose English or Yorùbá slug equals slug.
// An English match wins over a Yorùbá one.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Or{squirrel.Eq{"slug_en": slug}, squirrel.Eq{"slug_yo": slug}}).
		OrderByClause("(slug_en IS NOT DISTINCT FROM ?) DESC", slug).
		Limit(1)

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "article", slug)
	}
	return a, nil
}

// List returns one page of articles matching q and the total number of matches.
func (r *Repo) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := applyWhere(postgres.Builder.Select("count(*)").From(table), q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count articles: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	sb := applyWhere(postgres.Builder.Select(columns...).From(table), q).OrderBy(orderBy(q)...)
	if q.Limit > 0 {
		sb = sb.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		sb = sb.Offset(uint64(q.Offset))
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	articles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Article, error) {
		return scanArticle(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	return articles, total, nil
}

// CountByTopic returns the number of articles of any status in a topic.
func (r *Repo) CountByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM articles WHERE topic_id = $1`, topicID).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count articles of topic %s: %w", topicID, err)
	}
	return n, nil
}

// PublishedCountsByTopic returns the number of published articles per topic.
// Topics without published articles are absent from the map.
func (r *Repo) PublishedCountsByTopic(ctx context.Context) (map[uuid.UUID]int, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`SELECT topic_id, count(*) FROM articles
		 WHERE status = 'published' AND topic_id IS NOT NULL
		 GROUP BY topic_id`)
	if err != nil {
		return nil, fmt.Errorf("count published articles by topic: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id uuid.UUID
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan topic count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count published articles by topic: %w", err)
	}
	return counts, nil
}

// Counts returns total, published and draft article counts.
func (r *Repo) Counts(ctx context.Context) (domain.ArticleCounts, error) {
	var c domain.ArticleCounts
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE status = 'published'),
		        count(*) FILTER (WHERE status = 'draft')
		 FROM articles`).
		Scan(&c.Total, &c.Published, &c.Draft)
	if err != nil {
		return domain.ArticleCounts{}, fmt.Errorf("count articles: %w", err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new article and returns the persisted domain.Article.
// Returns domain.ErrDuplicateSlug if either slug is taken.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	query := postgres.Builder.
		Insert(table).
		Columns(
			"id", "title_yo", "title_en", "content_yo", "content_en", "slug_yo", "slug_en",
			"category", "topic_id", "author_id", "status", "views", "tags",
			"featured_image", "images", "audio_url", "video_url", "read_time", "published_at",
		).
		Values(
			a.ID, a.Title.Yo, a.Title.En, a.Content.Yo, a.Content.En, nullIfEmpty(a.Slug.Yo), nullIfEmpty(a.Slug.En),
			a.Category.String(), a.TopicID, a.AuthorID, a.Status.String(), a.Views, tagsArg(a.Tags),
			a.FeaturedImage, imagesArg(a.Images), a.AudioURL, a.VideoURL, a.ReadTime, a.PublishedAt,
		).
		Suffix(returning)

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, mapWriteError(err, a.ID)
	}
	return created, nil
}

// Update overwrites every mutable field of the article with a's values.
// Returns domain.ErrNotFound if the article does not exist and
// domain.ErrDuplicateSlug if either slug is taken by another article.
func (r *Repo) Update(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	query := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"title_yo":       a.Title.Yo,
			"title_en":       a.Title.En,
			"content_yo":     a.Content.Yo,
			"content_en":     a.Content.En,
			"slug_yo":        nullIfEmpty(a.Slug.Yo),
			"slug_en":        nullIfEmpty(a.Slug.En),
			"category":       a.Category.String(),
			"topic_id":       a.TopicID,
			"status":         a.Status.String(),
			"tags":           tagsArg(a.Tags),
			"featured_image": a.FeaturedImage,
			"images":         imagesArg(a.Images),
			"audio_url":      a.AudioURL,
			"video_url":      a.VideoURL,
			"read_time":      a.ReadTime,
			"published_at":   a.PublishedAt,
		}).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix(returning)

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, mapWriteError(err, a.ID)
	}
	return updated, nil
}

// UpdateStatus sets the status and publication time of an article.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ArticleStatus, publishedAt *time.Time) (*domain.Article, error) {
	query := postgres.Builder.
		Update(table).
		Set("status", status.String()).
		Set("published_at", publishedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// IncrementViews atomically adds one view and returns the updated article.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := postgres.Builder.
		Update(table).
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// Delete removes an article. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mapWriteError reports slug collisions as domain.ErrDuplicateSlug.
func mapWriteError(err error, id uuid.UUID) error {
	switch postgres.ViolatedConstraint(err) {
	case constraintSlugYo, constraintSlugEn:
		return fmt.Errorf("article %s: %w", id, domain.ErrDuplicateSlug)
	}
	return postgres.MapError(err, "article", id)
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Article, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanArticle(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		a                domain.Article
		slugYo, slugEn   *string
		category, status string
	)
	err := row.Scan(
		&a.ID, &a.Title.Yo, &a.Title.En, &a.Content.Yo, &a.Content.En, &slugYo, &slugEn,
		&category, &a.TopicID, &a.AuthorID, &status, &a.Views, &a.Tags,
		&a.FeaturedImage, &a.Images, &a.AudioURL, &a.VideoURL, &a.ReadTime,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Article{}, err
	}

	if slugYo != nil {
		a.Slug.Yo = *slugYo
	}
	if slugEn != nil {
		a.Slug.En = *slugEn
	}
	a.Category = domain.Category(category)
	a.Status = domain.ArticleStatus(status)
	if a.Tags == nil {
		a.Tags = []domain.Localized{}
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	return a, nil
}

// nullIfEmpty stores an empty slug as NULL so unset slugs never collide.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func tagsArg(tags []domain.Localized) []domain.Localized {
	if tags == nil {
		return []domain.Localized{}
	}
	return tags
}

func imagesArg(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
