package services

import (
	"errors"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
)

var (
	// ErrNotFound is returned when an entity is absent or tombstoned
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidState is returned when an operation conflicts with the
	// current state of its target (terminal run, foreign dataset, disabled
	// dataset, step outside its scenario)
	ErrInvalidState = errors.New("invalid state")

	// ErrBadRequest is returned when input fails shape constraints
	ErrBadRequest = errors.New("bad request")

	// ErrDispatchFailed is returned when a run was persisted but could not
	// be handed to the broker
	ErrDispatchFailed = errors.New("dispatch failed")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap folds validation errors into the bad-request kind.
func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// mapRunnerError translates the runner's dataset resolution errors into
// service error kinds. Other errors pass through unchanged.
func mapRunnerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, runner.ErrRequestNotFound),
		errors.Is(err, runner.ErrDatasetNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	case errors.Is(err, runner.ErrDatasetMismatch),
		errors.Is(err, runner.ErrDatasetDisabled):
		return fmt.Errorf("%w: %s", ErrInvalidState, err)
	case errors.Is(err, runner.ErrDatasetRequired):
		return fmt.Errorf("%w: %s", ErrBadRequest, err)
	default:
		return err
	}
}
