package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigParseFailed is returned when a configuration file is not valid YAML.
	ErrConfigParseFailed = errors.New("failed to parse configuration")

	// ErrConfigInvalid is returned when an override cannot be applied.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadError represents an error loading configuration.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config from %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
