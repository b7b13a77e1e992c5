package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleViewer UserRole = "viewer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEditor, UserRoleViewer:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// CanEdit reports whether the role may create and modify articles.
func (r UserRole) CanEdit() bool {
	return r == UserRoleAdmin || r == UserRoleEditor
}

// Proficiency is a user's self-declared level of Yorùbá.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyNative       Proficiency = "native"
)

func (p Proficiency) String() string { return string(p) }

func (p Proficiency) IsValid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyFluent, ProficiencyNative:
		return true
	}
	return false
}

// Category is the science subject an article or topic belongs to.
type Category string

const (
	CategoryPhysics    Category = "physics"
	CategoryBiology    Category = "biology"
	CategoryChemistry  Category = "chemistry"
	CategoryEarth      Category = "earth"
	CategoryTechnology Category = "technology"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryPhysics, CategoryBiology, CategoryChemistry, CategoryEarth, CategoryTechnology:
		return true
	}
	return false
}

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{CategoryPhysics, CategoryBiology, CategoryChemistry, CategoryEarth, CategoryTechnology}
}

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

func (s ArticleStatus) String() string { return string(s) }

func (s ArticleStatus) IsValid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPublished, ArticleStatusArchived:
		return true
	}
	return false
}
