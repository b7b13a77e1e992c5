package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTopicColor is the display color of topics created without one.
const DefaultTopicColor = "#3498db"

// Topic groups articles under a named subject.
type Topic struct {
	ID            uuid.UUID
	Name          Localized
	Category      Category
	Description   Localized
	Icon          string
	Color         string
	ParentTopicID *uuid.UUID
	ArticleCount  int
	IsFeatured    bool
	Order         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TopicRef is the projection of a topic embedded in article responses.
type TopicRef struct {
	ID    uuid.UUID
	Name  Localized
	Icon  string
	Color string
}

// TopicFilter narrows topic listings.
type TopicFilter struct {
	Featured *bool
	Category *Category
}

// TopicArticleCount is the number of published articles in a topic.
type TopicArticleCount struct {
	TopicID uuid.UUID
	Name    Localized
	Count   int
}
