package domain

import "errors"

// Sentinel errors
var (
	ErrNotFound        = errors.New("not found")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyTag        = errors.New("tag cannot be empty")
	ErrDuplicateTag    = errors.New("tag already exists")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrDuplicateMember = errors.New("member already exists")
)
