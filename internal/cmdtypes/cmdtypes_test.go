package cmdtypes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpscaffold/cli/internal/config"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/layout"
)

func TestGlobalConfigDefaults(t *testing.T) {
	g := &GlobalConfig{}

	assert.IsType(t, &afero.OsFs{}, g.Filesystem())
	assert.Equal(t, config.DefaultRepository, g.Settings().Boilerplate.Repository)
	assert.Equal(t, config.DefaultMarker, g.Fetcher().Marker)
}

func TestGlobalConfigScaffolder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Boilerplate.Name = "acme-boilerplate"
	cfg.Boilerplate.CacheDir = "/cache/bp"
	cfg.Boilerplate.Marker = "acme.php"
	cfg.Prompt.MaxAttempts = 3

	fs := afero.NewMemMapFs()
	g := &GlobalConfig{Config: cfg, Fs: fs}

	s, err := g.Scaffolder()
	require.NoError(t, err)

	assert.Same(t, fs, s.Fs)
	assert.Equal(t, "acme-boilerplate", s.PackageName)
	assert.Equal(t, "/cache/bp", s.CacheDir)
	assert.Equal(t, 3, s.MaxAttempts)
	assert.Equal(t, layout.Vocabulary, s.Vocabulary)
	assert.Equal(t, "acme.php", s.Fetcher.Marker)
	assert.Equal(t, config.DefaultRepository, s.Fetcher.Repository)
	assert.NotNil(t, s.Prompter)
}

func TestExit(t *testing.T) {
	assert.NoError(t, Exit(nil))

	err := Exit(fmt.Errorf("scaffolding: %w", oerrors.NewExistsError("/p")))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.ErrorIs(t, err, oerrors.ErrExists)

	assert.Equal(t, ExitManifestError, oerrors.ExitCodeFromError(Exit(oerrors.NewManifestError("bad", "composer.json", nil))))
	assert.Equal(t, ExitGeneralError, oerrors.ExitCodeFromError(Exit(errors.New("boom"))))
}
