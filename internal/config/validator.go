package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded configuration. It returns nil or ValidationErrors.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	u, err := url.Parse(cfg.Boilerplate.Repository)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "boilerplate.repository",
			Message: fmt.Sprintf("must be an http(s) URL, got %q", cfg.Boilerplate.Repository),
		})
	}

	if strings.TrimSpace(cfg.Boilerplate.Marker) == "" {
		errs = append(errs, ValidationError{
			Field:   "boilerplate.marker",
			Message: "must not be empty",
		})
	}

	if cfg.Prompt.MaxAttempts < 0 {
		errs = append(errs, ValidationError{
			Field:   "prompt.maxAttempts",
			Message: "must be zero (unbounded) or positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
