package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/envie-dev/envie-host/internal/workflows"
	"github.com/spf13/cobra"
)

var checkJSONOutput bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "output in JSON format")
}

func resetCheckCommandState() {
	checkJSONOutput = false
}

var checkCmd = &cobra.Command{
	Use:   "check [user-id]",
	Short: "Check whether a vault exists for a user",
	Long: `Reports whether a vault file exists for the given user id.

With no user id (or the literal "legacy"), the pre-multi-user files
vault.hold and snapshot.hold are also considered.

The check never fails: a vault that cannot be probed counts as absent.
Use --json for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting check command")

		userID := ""
		if len(args) > 0 {
			userID = args[0]
		}

		root, err := configs.StorageRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve storage root: %v", err)
		}
		Logger.Debugf("Storage root: %s", root)

		result, err := workflows.Check(cmd.Context(), root, workflows.CheckOptions{UserID: userID})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to check vault: %v", err)
		}

		if checkJSONOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal result: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if result.Exists {
			fmt.Printf("%s Vault present for %s %s\n",
				ui.Success.Sprint("✓"),
				ui.Highlight.Sprint(displayUserID(userID)),
				ui.Muted.Sprint(result.Strategy))
			fmt.Printf("%s %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(result.MatchedPath))
		} else {
			fmt.Printf("%s No vault found for %s\n",
				ui.Error.Sprint("✗"),
				ui.Highlight.Sprint(displayUserID(userID)))
			fmt.Printf("%s Expected %s\n", ui.Info.Sprint("→"),
				ui.Path.Sprint(filepath.Join(root, "vault_"+userID+".hold")))
		}

		return nil
	},
}

// displayUserID makes the legacy sentinel visible in terminal output.
func displayUserID(userID string) string {
	if userID == "" {
		return "(legacy)"
	}
	return userID
}
