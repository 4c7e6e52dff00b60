package model

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidBook    = errors.New("book reference does not resolve")
	ErrInvalidUser    = errors.New("user reference does not resolve")
)
