package services

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
)
