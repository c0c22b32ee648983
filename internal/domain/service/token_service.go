// Package service declares the domain services implemented by the infra layer.
package service

import (
	"acai/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are carried by the session token issued after mock authentication.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role,omitempty"` // empty for a provisional identity
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateToken issues a token for the user's current identity and role.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
