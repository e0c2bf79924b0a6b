//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrConnectivity)
	assert.NotEqual(t, ErrExists, ErrValidation)
	assert.NotEqual(t, ErrManifest, ErrNotFound)
	assert.NotEqual(t, ErrDeclined, ErrTooManyAttempts)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "fetch failed",
		Message:  "boom",
		Location: "/vendor/boilerplate",
		Context:  map[string]string{"URL": "https://example.com/a.zip", "Attempt": "1"},
		Hint:     "Retry later",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: fetch failed")
	assert.Contains(t, output, "Location: /vendor/boilerplate")
	assert.Contains(t, output, "URL: https://example.com/a.zip")
	assert.Contains(t, output, "boom")
	assert.Contains(t, output, "Hint: Retry later")
	// Context keys render in sorted order
	assert.Less(t, strings.Index(output, "Attempt"), strings.Index(output, "URL"))
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewExistsError(t *testing.T) {
	err := NewExistsError("/plugins/my-plugin")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "plugin already exists", detail.Type)
	assert.Equal(t, "/plugins/my-plugin", detail.Location)
}

func TestNewFetchError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewFetchError("https://example.com/master.zip", "/cache", nil)
		assert.True(t, errors.Is(err, ErrConnectivity))
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, ExitFetchError, ExitCodeFromError(err))
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("download returned status 404")
		err := NewFetchError("https://example.com/1.0.zip", "/cache", cause)
		assert.True(t, errors.Is(err, ErrConnectivity))
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "status 404")
	})
}

func TestNewManifestError(t *testing.T) {
	err := NewManifestError("writing composer.json", "composer.json", fmt.Errorf("read-only file system"))

	assert.True(t, errors.Is(err, ErrManifest))
	assert.Contains(t, err.Error(), "read-only file system")
	assert.Equal(t, ExitManifestError, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "bad tag")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "bad tag")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"declined", fmt.Errorf("components: %w", ErrDeclined), ExitSuccess},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"exists", NewExistsError("x"), ExitValidationError},
		{"not found", NewNotFoundError("missing", "x", ""), ExitNotFound},
		{"manifest", NewManifestError("x", "y", nil), ExitManifestError},
		{"explicit", &ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"other", errors.New("unexpected"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Fetch Error", ExitCodeName(ExitFetchError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestNewFilesystemError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewFilesystemError("couldn't create the plugin directory", "/wp/plugins/x", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "filesystem operation failed")
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
}

func TestNewExitError(t *testing.T) {
	err := NewExitError(errors.New("boom"), ExitFetchError)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, ExitFetchError, ExitCodeFromError(fmt.Errorf("wrapped: %w", err)))
}
