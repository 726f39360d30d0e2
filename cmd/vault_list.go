package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/envie-dev/envie-host/internal/vault"
	"github.com/spf13/cobra"
)

var listJSONOutput bool

func init() {
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "output in JSON format")
}

func resetListCommandState() {
	listJSONOutput = false
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the vault files in the storage root",
	Long: `Shows every vault file in the storage root: the per-user
vault_<user-id>.hold files plus the pre-multi-user vault.hold and
snapshot.hold if they are still around.

Use --json for machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		root, err := configs.StorageRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve storage root: %v", err)
		}
		Logger.Debugf("Storage root: %s", root)

		locator := vault.Locator{Root: root}
		infos, err := locator.List()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list vaults: %v", err)
		}

		if listJSONOutput {
			if infos == nil {
				infos = []vault.Info{}
			}
			data, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal result: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(infos) == 0 {
			fmt.Printf("%s No vault files in %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(root))
			return nil
		}

		fmt.Printf("  %-24s  %-10s  %8s  %s\n", "FILE", "USER", "SIZE", "MODIFIED")
		for _, info := range infos {
			user := info.UserID
			if info.Legacy {
				user = ui.Muted.Sprint("legacy")
			} else if user == "" {
				user = ui.Muted.Sprint("legacy")
			}
			fmt.Printf("  %-24s  %-10s  %8d  %s\n",
				info.Name, user, info.Size, info.ModTime.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("\n%d vault file(s) in %s\n", len(infos), ui.Path.Sprint(root))
		return nil
	},
}
