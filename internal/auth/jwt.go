package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

// Token verification failures. Both are domain.ErrUnauthorized.
var (
	ErrTokenInvalid = fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	ErrTokenExpired = fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
)

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// TokenManager issues and verifies signed, time-limited session tokens.
// It keeps no state besides its key, so tokens cannot be revoked.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// sessionClaims extends standard JWT claims with the user's role.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Issue creates a signed HS256 JWT with the user ID as subject and the role as a custom claim.
func (m *TokenManager) Issue(userID uuid.UUID, role domain.UserRole) (string, error) {
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token. It fails with ErrTokenExpired when the
// token is past its expiry and with ErrTokenInvalid for any other defect.
func (m *TokenManager) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("%w: token is empty", ErrTokenInvalid)
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("%w: invalid claims", ErrTokenInvalid)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid subject: %v", ErrTokenInvalid, err)
	}

	return Claims{UserID: userID, Role: domain.UserRole(claims.Role)}, nil
}
