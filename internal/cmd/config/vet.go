package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/config"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the wpscaffold configuration file",
		Long: `Validate the wpscaffold configuration file.

The command validates the configuration file at ~/.wpscaffold/config.yaml by default.
Use --config flag to specify a different location. Environment overrides are
applied before validation.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVet(g)
		},
	}
}

func runVet(g *cmdtypes.GlobalConfig) error {
	fs := g.Filesystem()

	path, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("expanding config path: %w", err))
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return cmdtypes.Exit(oerrors.NewNotFoundError("config file not found", path, "run 'wpscaffold config init' to create one"))
	}

	cfg, err := config.NewLoader().WithFs(fs).Load(path)
	if err != nil {
		return cmdtypes.Exit(oerrors.NewValidationError(err.Error(), path, ""))
	}

	if err := config.Validate(cfg); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			output.Error("config validation failed", "file", path)
			for _, e := range validationErrs {
				output.Error(e.Field + ": " + e.Message)
			}
			return &cmdtypes.ExitError{Err: err, Code: cmdtypes.ExitValidationError, Printed: true}
		}
		return cmdtypes.Exit(err)
	}

	output.Println(output.FormatCheckmark("Config file is valid: " + path))
	return nil
}
