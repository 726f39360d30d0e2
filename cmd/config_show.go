package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSONOutput bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSONOutput, "json", false, "output in JSON format")
}

// configShowResult is the machine-readable shape of `config show`.
type configShowResult struct {
	StorageRoot  string `json:"storage_root"`
	DefaultRoot  string `json:"default_root"`
	ConfigsPath  string `json:"configs_path"`
	InstallUUID  string `json:"install_uuid,omitempty"`
	WindowTitle  string `json:"window_title"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective host configuration",
	Long: `Shows the resolved storage root (including any override from host.toml),
the configuration directory, the installation UUID, and the window
settings handed to the webview shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		root, err := configs.StorageRoot()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to resolve storage root: %v", err)
		}

		config, err := configs.LoadHostConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load host config: %v", err)
		}

		result := configShowResult{
			StorageRoot:  root,
			DefaultRoot:  configs.EnvieHostSettings.StorageRoot,
			ConfigsPath:  configs.EnvieHostSettings.ConfigsPath,
			InstallUUID:  config.Host.InstallUUID,
			WindowTitle:  config.Window.Title,
			WindowWidth:  config.Window.Width,
			WindowHeight: config.Window.Height,
		}

		if configShowJSONOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("failed to marshal result: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Storage root:  %s\n", ui.Path.Sprint(result.StorageRoot))
		if result.StorageRoot != result.DefaultRoot {
			fmt.Printf("  %s default is %s\n", ui.Muted.Sprint("override"), ui.Path.Sprint(result.DefaultRoot))
		}
		fmt.Printf("Config dir:    %s\n", ui.Path.Sprint(result.ConfigsPath))
		if result.InstallUUID != "" {
			fmt.Printf("Installation:  %s\n", ui.Highlight.Sprint(result.InstallUUID))
		} else {
			fmt.Printf("Installation:  %s\n", ui.Muted.Sprint("not bootstrapped"))
			fmt.Printf("  %s Run %s first\n", ui.Info.Sprint("→"), ui.Code.Sprint("envie-host vault init"))
		}
		fmt.Printf("Window:        %s, %dx%d\n", result.WindowTitle, result.WindowWidth, result.WindowHeight)
		return nil
	},
}
