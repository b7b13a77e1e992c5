package article

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// filterAll clears the status or category constraint.
const filterAll = "all"

// ListParams holds the raw listing parameters of a request.
// Zero values mean "not given".
type ListParams struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
	Author   string
	Topic    string
	Sort     string
}

// Defaults holds the per-route fallbacks applied by BuildQuery.
type Defaults struct {
	Status   string
	Limit    int
	MaxLimit int
	Sort     string
}

// BuildQuery translates listing parameters into a storage query. It is the
// single place where public, admin and per-topic listings derive their filter,
// sort order and page window.
//
// Unparseable author or topic references yield a query that matches nothing.
// Unknown categories and statuses pass through and simply match no rows.
func BuildQuery(p ListParams, d Defaults) domain.ArticleQuery {
	var q domain.ArticleQuery

	// Status
	status := strings.TrimSpace(p.Status)
	if status == "" {
		status = d.Status
	}
	if !strings.EqualFold(status, filterAll) {
		q.Status = status
	}

	// Category: literal category OR topic reference
	if category := strings.TrimSpace(p.Category); category != "" && !strings.EqualFold(category, filterAll) {
		match := &domain.CategoryMatch{Category: category}
		if id, err := uuid.Parse(category); err == nil {
			match.TopicID = &id
		}
		q.Category = match
	}

	q.Search = strings.TrimSpace(p.Search)

	// Exact references
	if author := strings.TrimSpace(p.Author); author != "" {
		if id, err := uuid.Parse(author); err == nil {
			q.AuthorID = &id
		} else {
			q.MatchNone = true
		}
	}
	if topic := strings.TrimSpace(p.Topic); topic != "" {
		if id, err := uuid.Parse(topic); err == nil {
			q.TopicID = &id
		} else {
			q.MatchNone = true
		}
	}

	// Sort
	q.SortBy, q.SortDesc = parseSort(p.Sort)
	if !q.SortBy.IsValid() {
		q.SortBy, q.SortDesc = parseSort(d.Sort)
	}
	if !q.SortBy.IsValid() {
		q.SortBy, q.SortDesc = domain.SortByCreatedAt, true
	}

	// Page window
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = d.Limit
	}
	if d.MaxLimit > 0 && limit > d.MaxLimit {
		limit = d.MaxLimit
	}
	q.Limit = limit
	q.Offset = (page - 1) * limit

	return q
}

// parseSort splits "-field" / "field" into a field and a direction.
func parseSort(s string) (domain.ArticleSortField, bool) {
	s = strings.TrimSpace(s)
	if desc, ok := strings.CutPrefix(s, "-"); ok {
		return domain.ArticleSortField(desc), true
	}
	return domain.ArticleSortField(strings.TrimPrefix(s, "+")), false
}

// pageOf returns the 1-based page number of q's window.
func pageOf(q domain.ArticleQuery) int {
	if q.Limit <= 0 {
		return 1
	}
	return q.Offset/q.Limit + 1
}
