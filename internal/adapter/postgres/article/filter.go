package article

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// searchColumns are matched by the free-text search.
var searchColumns = []string{"title_yo", "title_en", "content_yo", "content_en"}

// sortColumns maps domain sort fields to SQL columns.
var sortColumns = map[domain.ArticleSortField]string{
	domain.SortByCreatedAt:   "created_at",
	domain.SortByUpdatedAt:   "updated_at",
	domain.SortByPublishedAt: "published_at",
	domain.SortByViews:       "views",
	domain.SortByReadTime:    "read_time",
	domain.SortByTitle:       "title_en",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereClause translates q into a WHERE condition. ok is false when q has no constraint.
func whereClause(q domain.ArticleQuery) (cond squirrel.Sqlizer, ok bool) {
	if q.MatchNone {
		return squirrel.Expr("FALSE"), true
	}

	and := squirrel.And{}

	if q.Status != "" {
		and = append(and, squirrel.Eq{"status": q.Status})
	}

	if q.Category != nil {
		or := squirrel.Or{}
		if q.Category.Category != "" {
			or = append(or, squirrel.Expr("lower(category) = lower(?)", q.Category.Category))
		}
		if q.Category.TopicID != nil {
			or = append(or, squirrel.Eq{"topic_id": *q.Category.TopicID})
		}
		if len(or) > 0 {
			and = append(and, or)
		}
	}

	if q.Search != "" {
		pattern := "%" + likeEscaper.Replace(q.Search) + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		and = append(and, or)
	}

	if q.AuthorID != nil {
		and = append(and, squirrel.Eq{"author_id": *q.AuthorID})
	}

	if q.TopicID != nil {
		and = append(and, squirrel.Eq{"topic_id": *q.TopicID})
	}

	if len(and) == 0 {
		return nil, false
	}
	return and, true
}

// orderBy returns the ORDER BY terms for q. Unknown fields sort by creation time.
// The id term makes paging stable across equal sort keys.
func orderBy(q domain.ArticleQuery) []string {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = sortColumns[domain.SortByCreatedAt]
	}

	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return []string{col + " " + dir + " NULLS LAST", "id " + dir}
}

func applyWhere(sb squirrel.SelectBuilder, q domain.ArticleQuery) squirrel.SelectBuilder {
	if cond, ok := whereClause(q); ok {
		return sb.Where(cond)
	}
	return sb
}
