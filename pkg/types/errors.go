package types

import "errors"

// Store operation errors. The backend translates raw driver errors into
// these before they cross the API boundary.
var (
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("entity not found")
	ErrConstraint    = errors.New("storage constraint violated")
)

// Input validation errors.
var (
	ErrInvalidName      = errors.New("name must not be empty")
	ErrInvalidTitle     = errors.New("title must not be empty")
	ErrInvalidDirection = errors.New("direction must be up or down")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)
