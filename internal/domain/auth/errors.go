package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrAuthRequired        = errors.New("authentication required")
	ErrAdminAccessRequired = errors.New("admin access required")
)
