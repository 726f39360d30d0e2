package main

import (
	"fmt"
	"os"

	"github.com/envie-dev/envie-host/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envie-host",
	Short: "Envie Host - The local vault host for the Envie desktop app.",
	Long: `Envie Host owns the on-disk side of the Envie secret vaults: it resolves
where each user's encrypted vault lives, bootstraps the Argon2 salt the
secret-storage engine is keyed with, and destroys vaults on request.

The vault files themselves are written by the secret-storage engine; this
tool only names, locates, and deletes them.

Usage:
  envie-host <command> [flags]

Available Commands:
  vault      Check, list, bootstrap, and nuke per-user vaults
  scan       Discover local config files (.env, config.local.yaml)
  config     Manage host configuration

Run 'envie-host help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Envie Host! Run 'envie-host --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.VaultCmd)
	rootCmd.AddCommand(cmd.ScanCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
