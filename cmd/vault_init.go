package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/envie-dev/envie-host/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the storage root and engine salt",
	Long: `Prepares the host's on-disk state: creates the storage root if it does
not exist, generates the Argon2 salt the secret-storage engine is keyed
with (once, on first run), and assigns this installation its UUID.

Running init again is safe; existing state is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		root, err := configs.StorageRoot()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve storage root: %v", err)
		}
		Logger.Debugf("Storage root: %s", root)

		spinner, cleanup := startSpinner("Bootstrapping storage root...", verbose)
		defer cleanup()

		result, err := workflows.Bootstrap(cmd.Context(), root)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to bootstrap storage root."
			return Logger.ErrorfAndReturn("failed to bootstrap: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Storage root ready."
		cleanup()

		fmt.Println()
		banner := figure.NewColorFigure("Envie", "alligator2", "green", true)
		banner.Print()
		fmt.Println()

		fmt.Printf("%s Storage root: %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(result.Root))
		if result.SaltCreated {
			fmt.Printf("%s Generated engine salt at %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(result.SaltPath))
		} else {
			fmt.Printf("%s Engine salt already present at %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(result.SaltPath))
		}
		fmt.Printf("%s Installation: %s\n", ui.Info.Sprint("→"), ui.Highlight.Sprint(result.InstallUUID))

		return nil
	},
}
