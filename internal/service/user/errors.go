package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
	ErrLastAdmin    = errors.New("cannot remove the last admin")
	ErrForbidden    = errors.New("operation requires admin role")
)
