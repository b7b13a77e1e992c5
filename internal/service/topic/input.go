package topic

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ListInput holds the topic listing filters.
type ListInput struct {
	FeaturedOnly bool
	Category     string
}

// CreateInput holds the parameters for creating a topic.
type CreateInput struct {
	Name          domain.Localized
	Category      domain.Category
	Description   domain.Localized
	Icon          string
	Color         string
	ParentTopicID *uuid.UUID
	IsFeatured    bool
	Order         int
}

// UpdateInput holds a partial topic update. Nil fields are left unchanged.
type UpdateInput struct {
	Name          *domain.Localized
	Category      *domain.Category
	Description   *domain.Localized
	Icon          *string
	Color         *string
	ParentTopicID *uuid.UUID
	ClearParent   bool
	IsFeatured    *bool
	Order         *int
}

func (i UpdateInput) apply(t *domain.Topic) {
	if i.Name != nil {
		t.Name = *i.Name
	}
	if i.Category != nil {
		t.Category = *i.Category
	}
	if i.Description != nil {
		t.Description = *i.Description
	}
	if i.Icon != nil {
		t.Icon = *i.Icon
	}
	if i.Color != nil {
		t.Color = *i.Color
	}
	if i.ClearParent {
		t.ParentTopicID = nil
	} else if i.ParentTopicID != nil {
		id := *i.ParentTopicID
		t.ParentTopicID = &id
	}
	if i.IsFeatured != nil {
		t.IsFeatured = *i.IsFeatured
	}
	if i.Order != nil {
		t.Order = *i.Order
	}
}

// normalizeTopic trims names and fills defaults.
func normalizeTopic(t *domain.Topic) {
	t.Name.Yo = strings.TrimSpace(t.Name.Yo)
	t.Name.En = strings.TrimSpace(t.Name.En)
	t.Category = domain.Category(strings.ToLower(strings.TrimSpace(t.Category.String())))
	if t.Category == "" {
		t.Category = domain.CategoryPhysics
	}
	t.Color = strings.TrimSpace(t.Color)
	if t.Color == "" {
		t.Color = domain.DefaultTopicColor
	}
}

// validateTopic checks all fields and collects all errors.
func validateTopic(t *domain.Topic) error {
	var errs []domain.FieldError

	if t.Name.Yo == "" {
		errs = append(errs, domain.FieldError{Field: "name.yo", Message: "required"})
	}
	if t.Name.En == "" {
		errs = append(errs, domain.FieldError{Field: "name.en", Message: "required"})
	}
	if len(t.Name.Yo) > maxNameLength || len(t.Name.En) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if len(t.Description.Yo) > maxDescriptionLength || len(t.Description.En) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if !t.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of physics, biology, chemistry, earth, technology"})
	}
	if !colorPattern.MatchString(t.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color"})
	}
	if t.ParentTopicID != nil && *t.ParentTopicID == t.ID {
		errs = append(errs, domain.FieldError{Field: "parentTopic", Message: "topic cannot be its own parent"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
