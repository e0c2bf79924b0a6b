// Package boilerplate provides CLI command implementations for the boilerplate command group.
package boilerplate

import (
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
)

// NewBoilerplateCmd creates the boilerplate command group.
func NewBoilerplateCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "boilerplate",
		Short: "Boilerplate cache management",
		Long:  `Manage the cached copy of the plugin boilerplate.`,
	}

	c.AddCommand(NewFetchCmd(g))

	return c
}
