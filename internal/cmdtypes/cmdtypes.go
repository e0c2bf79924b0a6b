// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/plugin, internal/cmd/boilerplate,
// internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/wpscaffold/cli/internal/boilerplate"
	"github.com/wpscaffold/cli/internal/config"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/layout"
	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/prompt"
	"github.com/wpscaffold/cli/internal/scaffold"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
	Verbose    bool

	// Fs is the filesystem commands operate on. nil means the OS filesystem.
	Fs afero.Fs

	// Prompter answers interactive questions. nil means the terminal.
	Prompter prompt.Prompter

	// Source downloads boilerplate archives. nil means HTTP.
	Source boilerplate.Source
}

// Filesystem returns Fs, defaulting to the OS filesystem.
func (g *GlobalConfig) Filesystem() afero.Fs {
	if g.Fs == nil {
		g.Fs = afero.NewOsFs()
	}
	return g.Fs
}

// Settings returns the loaded config, or defaults when none was loaded.
func (g *GlobalConfig) Settings() *config.Config {
	if g.Config == nil {
		g.Config = config.DefaultConfig()
	}
	return g.Config
}

// Fetcher builds a boilerplate fetcher from the settings.
func (g *GlobalConfig) Fetcher() *boilerplate.Fetcher {
	fs := g.Filesystem()
	cfg := g.Settings()

	source := g.Source
	if source == nil {
		source = boilerplate.NewHTTPSource(fs)
	}
	f := boilerplate.NewFetcher(fs, source, cfg.Boilerplate.Repository)
	if cfg.Boilerplate.Marker != "" {
		f.Marker = cfg.Boilerplate.Marker
	}
	return f
}

// Scaffolder builds a scaffolder from the settings.
func (g *GlobalConfig) Scaffolder() (*scaffold.Scaffolder, error) {
	cfg := g.Settings()

	cacheDir, err := config.ExpandPath(cfg.Boilerplate.CacheDir)
	if err != nil {
		return nil, err
	}

	p := g.Prompter
	if p == nil {
		p = prompt.NewSurveyPrompter()
	}

	return &scaffold.Scaffolder{
		Fs:          g.Filesystem(),
		Fetcher:     g.Fetcher(),
		Prompter:    p,
		PackageName: cfg.Boilerplate.Name,
		CacheDir:    cacheDir,
		MaxAttempts: cfg.Prompt.MaxAttempts,
		Vocabulary:  layout.Vocabulary,
	}, nil
}

// Exit codes are aliases to internal/errors constants.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitFetchError      = oerrors.ExitFetchError
	ExitNotFound        = oerrors.ExitNotFound
	ExitManifestError   = oerrors.ExitManifestError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Exit reports err once and attaches its exit code. nil stays nil.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	code := oerrors.ExitCodeFromError(err)
	output.Error(err.Error())
	return &ExitError{Err: err, Code: code, Printed: true}
}
