package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("request carries no known subject")
	ErrForbidden       = errors.New("subject lacks the required role")
)
