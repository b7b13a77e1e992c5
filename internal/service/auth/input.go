package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt ignores anything longer
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// RegisterInput holds parameters for creating a password account.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        domain.UserRole
	Proficiency *domain.Proficiency
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	if i.Role == "" {
		i.Role = domain.UserRoleViewer
	}
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !emailPattern.MatchString(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of admin, editor, viewer"})
	}

	if i.Proficiency != nil && !i.Proficiency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "yorubaProficiency", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfileInput holds the profile fields a user may change.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name        *string
	Proficiency *domain.Proficiency
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Proficiency != nil && !i.Proficiency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "yorubaProficiency", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > maxNameLength:
		return []domain.FieldError{{Field: "name", Message: "cannot be more than 50 characters"}}
	}
	return nil
}
