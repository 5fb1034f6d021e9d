package errors

import "errors"

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrAlreadyJoined = errors.New("email already on the waitlist")
)
