package usecase

import (
	"errors"

	"renovation-tracker/pkg/utils"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
