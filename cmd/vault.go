package cmd

import (
	logger "github.com/envie-dev/envie-host/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// VaultCmd is the top-level vault command.
	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Manage the per-user secret vaults in the storage root",
		Long: `Provides existence checks, listing, bootstrap, and destruction of the
per-user vault files the secret-storage engine writes.

Vaults are named vault_<user-id>.hold inside the storage root. An empty
user id or the literal "legacy" also covers the pre-multi-user files
vault.hold and snapshot.hold.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing vault command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	VaultCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	VaultCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	VaultCmd.AddCommand(checkCmd)
	VaultCmd.AddCommand(nukeCmd)
	VaultCmd.AddCommand(listCmd)
	VaultCmd.AddCommand(initCmd)
}

// Helper functions for testing

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetCheckCommandState()
	resetNukeCommandState()
	resetListCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
