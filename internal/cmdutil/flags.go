// Package cmdutil provides shared command utilities for plugin and
// boilerplate subcommands. It centralizes flag group management and
// result formatting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/config"
	"github.com/wpscaffold/cli/internal/scaffold"
)

// ManifestFlags holds the flag locating composer.json (plugin init, boilerplate fetch).
type ManifestFlags struct {
	Manifest string
}

// AddTo registers the manifest flag on the given cobra command.
func (f *ManifestFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Manifest, "manifest", "",
		"Path to the project's composer.json (env: WPSCAFFOLD_MANIFEST)")
}

// Resolve returns the manifest path with flag > env > config > default precedence.
func (f *ManifestFlags) Resolve(cfg *config.Config) string {
	resolved := config.ResolveManifestPath(f.Manifest, cfg)
	config.LogResolvedValues(resolved)
	return resolved.Value
}

// BoilerplateFlags holds the flag selecting the boilerplate release.
type BoilerplateFlags struct {
	Version string
}

// AddTo registers the boilerplate flags on the given cobra command.
func (f *BoilerplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Version, "boilerplate-version", "",
		"Boilerplate tag or branch to scaffold from (default: Latest)")
}

// ScaffoldFlags holds every flag of `plugin init`.
type ScaffoldFlags struct {
	ManifestFlags
	BoilerplateFlags

	NoAutoload bool
	Yes        bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	f.ManifestFlags.AddTo(cmd)
	f.BoilerplateFlags.AddTo(cmd)
	cmd.Flags().BoolVar(&f.NoAutoload, "no-autoload", false,
		"Do not register the plugin namespace in composer.json")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Skip the component confirmation")
}

// Options builds scaffold options from the flags and positional arguments.
func (f *ScaffoldFlags) Options(args []string, cfg *config.Config) scaffold.Options {
	return scaffold.Options{
		Folder:             args[0],
		Components:         args[1:],
		BoilerplateVersion: f.Version,
		NoAutoload:         f.NoAutoload,
		ManifestPath:       f.Resolve(cfg),
		Yes:                f.Yes,
	}
}
