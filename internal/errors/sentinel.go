package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates the boilerplate could not be fetched.
	ErrConnectivity = errors.New("connectivity error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates the scaffold target already exists.
	ErrExists = errors.New("already exists")

	// ErrManifest indicates the project manifest could not be read or written.
	ErrManifest = errors.New("manifest error")

	// ErrDeclined indicates the user declined a confirmation. It is a normal early exit.
	ErrDeclined = errors.New("declined by user")

	// ErrTooManyAttempts indicates a prompt was not confirmed within the attempt limit.
	ErrTooManyAttempts = errors.New("too many attempts")
)
