package article

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const (
	maxTitleLength = 300
	maxTags        = 50
	maxImages      = 50
)

// CreateInput holds the fields of a new article.
type CreateInput struct {
	Title         domain.Localized
	Content       domain.Localized
	Slug          domain.Localized
	Category      domain.Category
	TopicID       *uuid.UUID
	Status        domain.ArticleStatus
	Tags          []domain.Localized
	FeaturedImage string
	Images        []string
	AudioURL      string
	VideoURL      string
	ReadTime      int
}

// UpdateInput holds a partial article update. Nil fields are left unchanged;
// bilingual fields are replaced as a whole.
type UpdateInput struct {
	Title         *domain.Localized
	Content       *domain.Localized
	Slug          *domain.Localized
	Category      *domain.Category
	TopicID       *uuid.UUID
	ClearTopic    bool
	Status        *domain.ArticleStatus
	Tags          *[]domain.Localized
	FeaturedImage *string
	Images        *[]string
	AudioURL      *string
	VideoURL      *string
	ReadTime      *int
}

// apply copies every given field of i onto a. Status is handled by the caller.
func (i UpdateInput) apply(a *domain.Article) {
	if i.Title != nil {
		a.Title = *i.Title
	}
	if i.Content != nil {
		a.Content = *i.Content
	}
	if i.Slug != nil {
		a.Slug = *i.Slug
	}
	if i.Category != nil {
		a.Category = *i.Category
	}
	if i.ClearTopic {
		a.TopicID = nil
	} else if i.TopicID != nil {
		id := *i.TopicID
		a.TopicID = &id
	}
	if i.Tags != nil {
		a.Tags = *i.Tags
	}
	if i.FeaturedImage != nil {
		a.FeaturedImage = *i.FeaturedImage
	}
	if i.Images != nil {
		a.Images = *i.Images
	}
	if i.AudioURL != nil {
		a.AudioURL = *i.AudioURL
	}
	if i.VideoURL != nil {
		a.VideoURL = *i.VideoURL
	}
	if i.ReadTime != nil {
		a.ReadTime = *i.ReadTime
	}
}

// normalizeArticle trims the text fields of a the way they are stored.
func normalizeArticle(a *domain.Article) {
	a.Title.Yo = strings.TrimSpace(a.Title.Yo)
	a.Title.En = strings.TrimSpace(a.Title.En)
	a.Category = domain.Category(strings.ToLower(strings.TrimSpace(a.Category.String())))
	if a.Tags == nil {
		a.Tags = []domain.Localized{}
	}
	if a.Images == nil {
		a.Images = []string{}
	}
}

// validateArticle checks the invariants every stored article satisfies.
func validateArticle(a *domain.Article) error {
	var errs []domain.FieldError

	errs = append(errs, requireLocalized("title", a.Title)...)
	if len(a.Title.Yo) > maxTitleLength || len(a.Title.En) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	errs = append(errs, requireLocalized("content", a.Content)...)

	if !a.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of physics, biology, chemistry, earth, technology"})
	}
	if !a.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of draft, published, archived"})
	}
	if a.ReadTime < 1 {
		errs = append(errs, domain.FieldError{Field: "readTime", Message: "must be at least 1"})
	}
	if len(a.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}
	if len(a.Images) > maxImages {
		errs = append(errs, domain.FieldError{Field: "images", Message: "too many images"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func requireLocalized(field string, l domain.Localized) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(l.Yo) == "" {
		errs = append(errs, domain.FieldError{Field: field + ".yo", Message: "required"})
	}
	if strings.TrimSpace(l.En) == "" {
		errs = append(errs, domain.FieldError{Field: field + ".en", Message: "required"})
	}
	return errs
}
