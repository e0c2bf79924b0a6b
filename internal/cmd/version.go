package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show wpscaffold version information.

Displays:
  - wpscaffold version, commit, and build date
  - the composer binary found on PATH and whether it can load PSR-4 entries`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.FullVersionString(version.Get(), version.DetectComposer()))
	return nil
}
