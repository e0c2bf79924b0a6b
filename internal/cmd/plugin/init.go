package plugin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/cmdutil"
	"github.com/wpscaffold/cli/internal/layout"
	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/scaffold"
)

// NewPluginInitCmd creates the plugin init command.
func NewPluginInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:   "init <folder> [components...]",
		Short: "Scaffold a new plugin",
		Long: fmt.Sprintf(`Scaffold a new plugin from the boilerplate.

The plugin is created in the WordPress plugins directory declared by the
project's composer.json (extra.installer-paths), under <folder>. <folder>
also becomes the text domain.

Optional components: %s.
Unknown components are ignored.

You will be asked for the plugin's real name, namespace, constants prefix
and view folder. With a PSR-4 boilerplate the namespace is then registered
in composer.json unless --no-autoload is given.`, strings.Join(layout.Names(layout.Vocabulary), ", ")),
		Example: `  # Plugin with a cron task and a widget
  wpscaffold plugin init my-shop cron widget

  # Pin the boilerplate release and skip the confirmation
  wpscaffold plugin init my-shop --boilerplate-version 3.2.0 --yes`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeComponents,
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args, g, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runInit(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig, flags *cmdutil.ScaffoldFlags) error {
	s, err := g.Scaffolder()
	if err != nil {
		return cmdtypes.Exit(err)
	}

	res, err := s.Run(c.Context(), flags.Options(args, g.Settings()))
	partial := err != nil && res != nil && len(res.Created) > 0
	if partial {
		output.Warn("plugin left partially scaffolded", "path", res.InstallPath)
		cmdutil.PrintPartialScaffold(res)
	}
	if scaffold.IsDeclined(err) {
		if !partial {
			output.Info("nothing was generated")
		}
		return nil
	}
	if err != nil {
		return cmdtypes.Exit(err)
	}

	cmdutil.PrintScaffoldResult(res)
	return nil
}

// completeComponents offers components not yet given once the folder is set.
func completeComponents(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	given, _ := layout.ParseComponents(layout.Vocabulary, args[1:])
	var out []string
	for _, comp := range layout.Vocabulary {
		if !containsComponent(given, comp) {
			out = append(out, string(comp)+"\t"+comp.Description())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func containsComponent(list []layout.Component, c layout.Component) bool {
	for _, l := range list {
		if l == c {
			return true
		}
	}
	return false
}
