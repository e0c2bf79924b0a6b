package plugin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/layout"
	"github.com/wpscaffold/cli/internal/output"
)

// NewPluginComponentsCmd creates the plugin components command.
func NewPluginComponentsCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var legacy bool

	c := &cobra.Command{
		Use:   "components",
		Short: "List the optional plugin components",
		Long: `List the optional components "plugin init" accepts, with the files each
one adds to the plugin. Files are shown for the PSR-4 boilerplate unless
--legacy is given.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			variant := layout.PSR4
			if legacy {
				variant = layout.Legacy
			}
			output.Println(formatComponents(variant))
			return nil
		},
	}

	c.Flags().BoolVar(&legacy, "legacy", false, "Show files for the legacy (autoload.php) boilerplate")

	return c
}

func formatComponents(variant layout.Variant) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Components (%s layout):\n", variant)
	for _, c := range layout.Vocabulary {
		fmt.Fprintf(&sb, "\n  %-12s %s\n", output.StyleNoun.Render(string(c)), c.Description())
		for _, f := range c.Files(variant) {
			sb.WriteString("      " + output.StyleDim.Render(f) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
