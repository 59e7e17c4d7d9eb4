package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Workflow errors
var (
	ErrUnknownStatus     = errors.New("unknown tender status")
	ErrIllegalTransition = errors.New("status transition not allowed from current status")
)
