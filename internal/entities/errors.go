package entities

import "errors"

var (
	// ErrDuplicate is returned by stores when a create violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)
