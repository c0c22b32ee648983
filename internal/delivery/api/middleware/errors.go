package middleware

import "acai/internal/errors"

var (
	errInvalidScheme = errors.New("authorization must be a Bearer token")
	errInvalidToken  = errors.New("invalid or expired token")
)
