package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("a user with this username already exists")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)
