package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully (or was declined).
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input, or the target already exists.
	ExitValidationError = 2

	// ExitFetchError indicates the boilerplate could not be downloaded.
	ExitFetchError = 3

	// ExitNotFound indicates a required file or directory was not found.
	ExitNotFound = 5

	// ExitManifestError indicates composer.json could not be read or written.
	ExitManifestError = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrDeclined):
		return ExitSuccess
	case errors.Is(err, ErrValidation), errors.Is(err, ErrExists):
		return ExitValidationError
	case errors.Is(err, ErrConnectivity):
		return ExitFetchError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrManifest):
		return ExitManifestError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitFetchError:
		return "Fetch Error"
	case ExitNotFound:
		return "Not Found"
	case ExitManifestError:
		return "Manifest Error"
	default:
		return "Unknown"
	}
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
