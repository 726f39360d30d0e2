package cmd

import (
	logger "github.com/envie-dev/envie-host/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configVerbose bool
	configDebug   bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage Envie Host configuration",
		Long: `Provides commands for inspecting and changing the host configuration.

Use these commands to:
  - Show the resolved paths and window settings (config show)
  - Move the storage root to a custom location (config set-storage-dir)

Examples:
  # Show the effective configuration
  envie-host config show

  # Keep vaults on an encrypted external drive
  envie-host config set-storage-dir /mnt/secure/envie`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetStorageDirCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	if ConfigCmd != nil && ConfigCmd.Flags() != nil {
		ConfigCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
