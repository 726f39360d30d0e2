package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/envie-dev/envie-host/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	nukeForce  bool
	nukeDryRun bool
)

func init() {
	nukeCmd.Flags().BoolVar(&nukeForce, "force", false, "skip confirmation prompt")
	nukeCmd.Flags().BoolVar(&nukeDryRun, "dry-run", false, "show what would be removed without making changes")
}

func resetNukeCommandState() {
	nukeForce = false
	nukeDryRun = false
}

var nukeCmd = &cobra.Command{
	Use:   "nuke [user-id]",
	Short: "Permanently destroy a user's vault",
	Long: `Deletes the vault file for the given user id. With no user id (or the
literal "legacy"), the pre-multi-user files vault.hold and snapshot.hold
are deleted as well.

Every resolved file is attempted even if an earlier deletion fails, and
all failures are reported together. There is no rollback: files already
removed stay removed. Destroying an absent vault is a no-op.

Use --dry-run to preview what would be removed.
Use --force to skip the confirmation prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting nuke command")

		userID := ""
		if len(args) > 0 {
			userID = args[0]
		}

		root, err := configs.StorageRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve storage root: %v", err)
		}
		Logger.Debugf("Storage root: %s", root)

		// Preview what the nuke would touch.
		preview, err := workflows.Nuke(cmd.Context(), root, workflows.NukeOptions{UserID: userID, DryRun: true})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve vault files: %v", err)
		}

		if len(preview.FilesToRemove) == 0 {
			fmt.Printf("%s No vault files found for %s. Nothing to do.\n",
				ui.Success.Sprint("✓"), ui.Highlight.Sprint(displayUserID(userID)))
			return nil
		}

		if nukeDryRun {
			fmt.Printf("[dry-run] Would remove %d file(s):\n", len(preview.FilesToRemove))
		} else {
			fmt.Printf("This will remove %d file(s):\n", len(preview.FilesToRemove))
		}
		for _, path := range preview.FilesToRemove {
			fmt.Printf("  %s\n", ui.Path.Sprint(path))
		}

		if nukeDryRun {
			fmt.Println("\nNo changes made.")
			return nil
		}

		if !nukeForce {
			fmt.Println("\nThe secrets inside cannot be recovered once the vault is deleted.")
			fmt.Println()

			if !confirmNukeAction() {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := workflows.Nuke(cmd.Context(), root, workflows.NukeOptions{UserID: userID})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to nuke vault: %v", err)
		}

		fmt.Printf("%s Removed %d file(s) for %s\n",
			ui.Success.Sprint("✓"), len(result.RemovedFiles), ui.Highlight.Sprint(displayUserID(userID)))
		return nil
	},
}

// confirmNukeAction prompts the user to confirm the nuke operation.
func confirmNukeAction() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Do you want to continue? [y/N]: ")
	response, err := reader.ReadString('\n')
	if err != nil {
		Logger.Errorf("Failed to read response: %v", err)
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
