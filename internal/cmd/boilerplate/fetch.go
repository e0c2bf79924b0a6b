package boilerplate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/cmdutil"
	"github.com/wpscaffold/cli/internal/output"
)

type fetchFlags struct {
	cmdutil.ManifestFlags
	cmdutil.BoilerplateFlags

	refresh bool
}

// NewFetchCmd creates the boilerplate fetch command.
func NewFetchCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var flags fetchFlags

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Download the boilerplate into the cache",
		Long: `Download the boilerplate into the cache "plugin init" reads from,
<vendor-dir>/boilerplate next to composer.json unless boilerplate.cacheDir
is configured.

An existing cache is kept as is, whatever its release. Use --refresh to
replace it.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runFetch(c, g, &flags)
		},
	}

	flags.ManifestFlags.AddTo(c)
	flags.BoilerplateFlags.AddTo(c)
	c.Flags().BoolVar(&flags.refresh, "refresh", false, "Remove the cached boilerplate and download it again")

	return c
}

func runFetch(c *cobra.Command, g *cmdtypes.GlobalConfig, flags *fetchFlags) error {
	s, err := g.Scaffolder()
	if err != nil {
		return cmdtypes.Exit(err)
	}

	res, err := s.Prefetch(c.Context(), flags.Version, flags.Resolve(g.Settings()), flags.refresh)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if res.Cached {
		output.Println(output.FormatCheckmark(fmt.Sprintf("Boilerplate already cached in %s", res.Dir)))
		return nil
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Boilerplate %s fetched into %s", res.Reference, res.Dir)))
	return nil
}
