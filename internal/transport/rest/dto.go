package rest

import (
	"time"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/dataloader"
)

type userResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	YorubaProficiency *string    `json:"yorubaProficiency,omitempty"`
	IsActive          bool       `json:"isActive"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type authorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type topicRefResponse struct {
	ID    string           `json:"id"`
	Name  domain.Localized `json:"name"`
	Icon  string           `json:"icon,omitempty"`
	Color string           `json:"color,omitempty"`
}

type articleResponse struct {
	ID            string             `json:"id"`
	Title         domain.Localized   `json:"title"`
	Content       domain.Localized   `json:"content"`
	Slug          domain.Localized   `json:"slug"`
	Category      string             `json:"category"`
	Topic         *topicRefResponse  `json:"topic"`
	Author        *authorResponse    `json:"author"`
	Status        string             `json:"status"`
	Views         int                `json:"views"`
	Tags          []domain.Localized `json:"tags"`
	FeaturedImage string             `json:"featuredImage,omitempty"`
	Images        []string           `json:"images"`
	AudioURL      string             `json:"audioUrl,omitempty"`
	VideoURL      string             `json:"videoUrl,omitempty"`
	ReadTime      int                `json:"readTime"`
	PublishedAt   *time.Time         `json:"publishedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type topicResponse struct {
	ID           string           `json:"id"`
	Name         domain.Localized `json:"name"`
	Category     string           `json:"category"`
	Description  domain.Localized `json:"description"`
	Icon         string           `json:"icon,omitempty"`
	Color        string           `json:"color"`
	ParentTopic  *string          `json:"parentTopic"`
	ArticleCount int              `json:"articleCount"`
	IsFeatured   bool             `json:"isFeatured"`
	Order        int              `json:"order"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		LastLogin: u.LastLoginAt,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Proficiency != nil {
		p := u.Proficiency.String()
		resp.YorubaProficiency = &p
	}
	return resp
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

func toArticleResponse(a *domain.Article, refs dataloader.ArticleRefs) articleResponse {
	resp := articleResponse{
		ID:            a.ID.String(),
		Title:         a.Title,
		Content:       a.Content,
		Slug:          a.Slug,
		Category:      a.Category.String(),
		Status:        a.Status.String(),
		Views:         a.Views,
		Tags:          a.Tags,
		FeaturedImage: a.FeaturedImage,
		Images:        a.Images,
		AudioURL:      a.AudioURL,
		VideoURL:      a.VideoURL,
		ReadTime:      a.ReadTime,
		PublishedAt:   a.PublishedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []domain.Localized{}
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if author := refs.Author(a); author != nil {
		resp.Author = &authorResponse{ID: author.ID.String(), Name: author.Name, Email: author.Email}
	}
	if topic := refs.Topic(a); topic != nil {
		resp.Topic = &topicRefResponse{ID: topic.ID.String(), Name: topic.Name, Icon: topic.Icon, Color: topic.Color}
	}
	return resp
}

func toTopicResponse(t *domain.Topic) topicResponse {
	resp := topicResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Category:     t.Category.String(),
		Description:  t.Description,
		Icon:         t.Icon,
		Color:        t.Color,
		ArticleCount: t.ArticleCount,
		IsFeatured:   t.IsFeatured,
		Order:        t.Order,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.ParentTopicID != nil {
		id := t.ParentTopicID.String()
		resp.ParentTopic = &id
	}
	return resp
}

func toTopicResponses(topics []domain.Topic) []topicResponse {
	out := make([]topicResponse, len(topics))
	for i := range topics {
		out[i] = toTopicResponse(&topics[i])
	}
	return out
}
