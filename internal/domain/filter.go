package domain

import "github.com/google/uuid"

// ArticleSortField names a sortable article attribute.
type ArticleSortField string

const (
	SortByCreatedAt   ArticleSortField = "createdAt"
	SortByUpdatedAt   ArticleSortField = "updatedAt"
	SortByPublishedAt ArticleSortField = "publishedAt"
	SortByViews       ArticleSortField = "views"
	SortByReadTime    ArticleSortField = "readTime"
	SortByTitle       ArticleSortField = "title"
)

func (f ArticleSortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByPublishedAt, SortByViews, SortByReadTime, SortByTitle:
		return true
	}
	return false
}

// CategoryMatch matches articles whose category equals Category
// (case-insensitive) or whose topic is TopicID. Empty sides are ignored.
type CategoryMatch struct {
	Category string
	TopicID  *uuid.UUID
}

// ArticleQuery is a storage-independent description of an article listing.
// Empty fields add no constraint.
type ArticleQuery struct {
	Status   string
	Category *CategoryMatch
	Search   string
	AuthorID *uuid.UUID
	TopicID  *uuid.UUID
	// MatchNone is set when a constraint can never be satisfied.
	MatchNone bool

	SortBy   ArticleSortField
	SortDesc bool

	Limit  int
	Offset int
}

// ArticlePage is one page of an article listing.
type ArticlePage struct {
	Articles []Article
	Total    int
	Page     int
	Limit    int
}

// Pages returns the number of pages needed to show Total articles.
func (p ArticlePage) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
