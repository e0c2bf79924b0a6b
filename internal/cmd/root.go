// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpscaffold/cli/internal/cmd/boilerplate"
	configcmd "github.com/wpscaffold/cli/internal/cmd/config"
	"github.com/wpscaffold/cli/internal/cmd/plugin"
	"github.com/wpscaffold/cli/internal/cmdtypes"
	"github.com/wpscaffold/cli/internal/config"
	"github.com/wpscaffold/cli/internal/output"
)

// rootFlags are the global flags shared by every command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the wpscaffold CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithConfig(&cmdtypes.GlobalConfig{})
}

// NewRootCmdWithConfig creates the root command around an existing GlobalConfig.
// Tests use it to inject a filesystem, prompter and boilerplate source.
func NewRootCmdWithConfig(g *cmdtypes.GlobalConfig) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "wpscaffold",
		Short: "WordPress plugin scaffolder",
		Long: `wpscaffold generates WordPress plugins from the BEA plugin boilerplate.

It downloads the boilerplate, keeps the components you ask for, renames
every identifier and registers the plugin namespace in composer.json.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, g, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: WPSCAFFOLD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(plugin.NewPluginCmd(g))
	rootCmd.AddCommand(boilerplate.NewBoilerplateCmd(g))
	rootCmd.AddCommand(configcmd.NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *cmdtypes.GlobalConfig, flags *rootFlags) error {
	g.Verbose = flags.verbose

	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	g.ConfigPath = configPath.Value

	// A broken config file must not block `config init --force`, so load
	// errors fall back to defaults. `config vet` reports them.
	loaded, loadErr := config.NewLoader().WithFs(g.Filesystem()).Load(g.ConfigPath)
	if loadErr != nil {
		loaded = config.DefaultConfig()
	}
	g.Config = loaded

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", g.ConfigPath, "error", loadErr)
	}
	config.LogResolvedValues(configPath)

	return nil
}
