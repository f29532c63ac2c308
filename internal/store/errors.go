package store

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateAssignment = errors.New("movie already assigned to user")
	ErrNotAssigned         = errors.New("movie not assigned to user")
)
