package services

import (
	"errors"
	"fmt"
)

// Domain errors surfaced by the tenancy and billing services. Routes map
// these onto HTTP statuses; none of them leaves a partial write behind.
var (
	ErrNotFound            = errors.New("record not found")
	ErrCapacityExceeded    = errors.New("dorm unit is at capacity")
	ErrInsufficientAdvance = errors.New("advance below required dorm share")
	ErrAlreadyTerminated   = errors.New("tenant is already terminated")
)

// ValidationError reports a malformed or missing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
