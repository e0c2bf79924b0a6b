// Package plugin provides CLI command implementations for the plugin command group.
package plugin

import (
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
)

// NewPluginCmd creates the plugin command group.
func NewPluginCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "plugin",
		Short: "Plugin scaffolding",
		Long:  `Generate WordPress plugins from the boilerplate.`,
	}

	c.AddCommand(NewPluginInitCmd(g))
	c.AddCommand(NewPluginComponentsCmd(g))

	return c
}
