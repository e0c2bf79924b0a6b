// Package errors provides the error taxonomy for the wpscaffold CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for user-facing reports.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewExistsError reports a scaffold target that is already on disk.
func NewExistsError(location string) error {
	return &DetailError{
		Type:     "plugin already exists",
		Message:  "A plugin with this folder's name already exists.",
		Location: location,
		Hint:     "Choose a different folder name or remove the existing plugin.",
		Cause:    ErrExists,
	}
}

// NewFetchError reports a boilerplate that could not be materialized.
func NewFetchError(url, location string, cause error) error {
	msg := "Couldn't download the plugin boilerplate."
	if cause != nil {
		msg = fmt.Sprintf("%s %v", msg, cause)
	}
	return &DetailError{
		Type:     "fetch failed",
		Message:  msg,
		Location: location,
		Context:  map[string]string{"URL": url},
		Hint:     "Check your network connection and the --boilerplate-version value.",
		Cause:    fmt.Errorf("%w: %w", ErrConnectivity, orNotFound(cause)),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewManifestError reports a composer.json read, parse or write failure.
func NewManifestError(message, location string, cause error) error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &DetailError{
		Type:     "manifest I/O failed",
		Message:  message,
		Location: location,
		Cause:    ErrManifest,
	}
}

// NewFilesystemError reports a directory or file that could not be created or moved.
func NewFilesystemError(message, location string, cause error) error {
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  message,
		Location: location,
		Cause:    cause,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

func orNotFound(err error) error {
	if err == nil {
		return ErrNotFound
	}
	return err
}
