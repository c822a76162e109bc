package service

import "errors"

var (
	// ErrValidation marks missing or malformed input
	ErrValidation = errors.New("validation error")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrSolicitudNotFound  = errors.New("solicitud not found")
)
