package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/config"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/output"
)

const configHeader = "# wpscaffold configuration\n# Every key can be overridden with a WPSCAFFOLD_ environment variable,\n# e.g. WPSCAFFOLD_BOILERPLATE_REPOSITORY.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new wpscaffold configuration file",
		Long: `Create a new wpscaffold configuration file with default values.

The configuration file is created at ~/.wpscaffold/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(g *cmdtypes.GlobalConfig, force bool) error {
	fs := g.Filesystem()

	path, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("expanding config path: %w", err))
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return cmdtypes.Exit(oerrors.NewValidationError(
			"config file already exists", path, "use --force to overwrite it"))
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdtypes.Exit(oerrors.NewFilesystemError("Couldn't create the config directory.", filepath.Dir(path), err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return cmdtypes.Exit(oerrors.NewFilesystemError("Couldn't write the config file.", path, err))
	}

	output.Println(output.FormatCheckmark("Config file created: " + path))
	return nil
}
