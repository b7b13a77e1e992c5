package domain

import (
	"time"

	"github.com/google/uuid"
)

// Localized holds a Yorùbá and an English variant of the same text.
type Localized struct {
	Yo string `json:"yo"`
	En string `json:"en"`
}

// IsZero reports whether both variants are empty.
func (l Localized) IsZero() bool { return l.Yo == "" && l.En == "" }

// DefaultReadTime is the read time in minutes assigned when none is given.
const DefaultReadTime = 5

// Article is a bilingual science article.
type Article struct {
	ID            uuid.UUID
	Title         Localized
	Content       Localized
	Slug          Localized
	Category      Category
	TopicID       *uuid.UUID
	AuthorID      uuid.UUID
	Status        ArticleStatus
	Views         int
	Tags          []Localized
	FeaturedImage string
	Images        []string
	AudioURL      string
	VideoURL      string
	ReadTime      int
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPublished reports whether the article is visible to the public.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// SetStatus moves the article to status. Entering "published" from any other
// status stamps PublishedAt; already published articles keep their stamp.
func (a *Article) SetStatus(status ArticleStatus, now time.Time) {
	if status == ArticleStatusPublished && (a.Status != ArticleStatusPublished || a.PublishedAt == nil) {
		a.PublishedAt = &now
	}
	a.Status = status
}

// ArticleCounts aggregates article totals for the admin dashboard.
type ArticleCounts struct {
	Total     int
	Published int
	Draft     int
}
