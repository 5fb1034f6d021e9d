package errors

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileExists       = errors.New("profile already exists")
	ErrInvalidProfileInput = errors.New("invalid profile input")
	ErrUsernameTaken       = errors.New("username already taken")
)
