package auth

import "errors"

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotFound       = errors.New("role not found")
	ErrDefaultRoleMissing = errors.New("default USER role not configured")
	ErrUserNotFound       = errors.New("user not found")
)
