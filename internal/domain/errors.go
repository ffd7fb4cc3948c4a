package domain

import "errors"

// Sentinels are wrapped into readable messages, e.g.
// fmt.Errorf("client with id %s %w", id, ErrNotFound).
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingReference = errors.New("does not exist")
	ErrReferenced       = errors.New("is still referenced")
	ErrUnauthorized     = errors.New("unauthorized")
)
