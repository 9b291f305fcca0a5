package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already registered")
	ErrEmployeeLinked  = errors.New("employee already linked to a user")
	ErrInvalidRole     = errors.New("invalid role")
)
