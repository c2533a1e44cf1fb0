package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/utils"
)

var (
	exit       = os.Exit
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'listings' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "listings",
		Short:         constants.DescRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, constants.FlagConfig, "c", "", "Path to listings config (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, constants.FlagDebug, false, "enable debug logs")

	rootCmd.AddCommand(
		newServeCmd(),
		newFetchCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads config for a subcommand and applies the log level. The
// --debug flag and LISTINGS_DEBUG both force debug logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if debug || os.Getenv(constants.EnvDebug) != "" {
		level = constants.LogLevelDebug
	}
	utils.SetLevel(level)
	return cfg, nil
}
