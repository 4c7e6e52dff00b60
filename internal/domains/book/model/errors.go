package model

import "errors"

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("book with this isbn already exists")
	ErrInvalidAuthor = errors.New("author reference does not resolve")
)
