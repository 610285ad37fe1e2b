package user

import "errors"

var (
	ErrNotFound    = errors.New("user not found")
	ErrInvalidAuth = errors.New("invalid credentials")
	ErrEmailTaken  = errors.New("email already taken")
	ErrForbidden   = errors.New("action is not allowed")
	ErrSelfDelete  = errors.New("you cannot delete your own account")
)
