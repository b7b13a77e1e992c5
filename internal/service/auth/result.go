package auth

import "github.com/heartmarshall/yoruba-science-backend/internal/domain"

// AuthResult is returned by Login, Register and InitAdmin.
type AuthResult struct {
	Token string
	User  *domain.User
}
