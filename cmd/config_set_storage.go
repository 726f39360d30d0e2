package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/spf13/cobra"
)

var configSetStorageDirCmd = &cobra.Command{
	Use:   "set-storage-dir <path>",
	Short: "Override where vault files are stored",
	Long: `Points the host at a custom storage root instead of the platform
default. Existing vault files are NOT moved; move them yourself before
switching, or the vaults will appear missing.

Pass an empty string to clear the override.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config set-storage-dir command")

		dir := args[0]
		if dir != "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("failed to resolve path: %v", err)
			}
			dir = abs
		}

		config, err := configs.LoadHostConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load host config: %v", err)
		}

		config.Host.StorageDir = dir
		if err := configs.SaveHostConfig(config); err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to save host config: %v", err)
		}

		if dir == "" {
			fmt.Printf("%s Cleared storage-dir override; using %s\n",
				ui.Success.Sprint("✓"), ui.Path.Sprint(configs.EnvieHostSettings.StorageRoot))
		} else {
			fmt.Printf("%s Storage root set to %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(dir))
			fmt.Printf("%s Existing vault files are not moved automatically\n", ui.Warning.Sprint("⚠"))
		}
		return nil
	},
}
