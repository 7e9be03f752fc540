package domain

import "errors"

// Common errors for store operations.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
