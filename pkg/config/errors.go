package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidYAML    = errors.New("invalid YAML")
)

// LoadError wraps a failure to load one configuration file.
type LoadError struct {
	File string
	Err  error
}

// NewLoadError creates a LoadError for the given file.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func isConfigNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}
