package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
	logger "github.com/envie-dev/envie-host/internal/logging"
	"github.com/envie-dev/envie-host/internal/scan"
	"github.com/envie-dev/envie-host/internal/ui"
	"github.com/spf13/cobra"
)

var (
	scanVerbose    bool
	scanDebug      bool
	scanJSONOutput bool
	ScanLogger     logger.Logger

	// ScanCmd discovers local config files for import into a vault.
	ScanCmd = &cobra.Command{
		Use:   "scan [patterns...]",
		Short: "Discover local config files (.env variants, config.local.yaml)",
		Long: `Scans the current directory tree for config files the front-end can
offer to import: .env variants and config.local.yaml. node_modules and
.git directories are skipped.

Patterns may be literal paths, directories, or globs with ** support.

Examples:
  # Scan the whole tree
  envie-host scan

  # Only the services tree
  envie-host scan 'services/**/.env'

Use --json for machine-readable output.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ScanLogger = logger.Logger{
				Verbose: scanVerbose,
				Debug:   scanDebug,
			}
			ScanLogger.Debugf("Initializing scan command with verbose=%t, debug=%t", scanVerbose, scanDebug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ScanLogger.Infof("Starting scan command")

			root, err := os.Getwd()
			if err != nil {
				return ScanLogger.ErrorfAndReturn("failed to get working directory: %v", err)
			}
			ScanLogger.Debugf("Scan root: %s", root)

			spinner, cleanup := startSpinnerWithFlags("Scanning for config files...", scanVerbose, scanDebug)
			defer cleanup()

			files, err := scan.FindConfigFiles(root, args)
			if err != nil {
				if errors.Is(err, kerrors.ErrNoFilesFound) {
					spinner.FinalMSG = ui.Error.Sprint("✗") + " No config files matched the given patterns."
					return nil
				}
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Scan failed."
				return ScanLogger.ErrorfAndReturn("failed to scan for config files: %v", err)
			}

			spinner.FinalMSG = ""
			cleanup()

			if scanJSONOutput {
				if files == nil {
					files = []string{}
				}
				data, err := json.MarshalIndent(files, "", "  ")
				if err != nil {
					return ScanLogger.ErrorfAndReturn("failed to marshal result: %v", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(files) == 0 {
				fmt.Printf("%s No config files found under %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(root))
				return nil
			}

			for _, f := range files {
				rel, err := filepath.Rel(root, f)
				if err != nil {
					rel = f
				}
				fmt.Printf("  %s\n", ui.Path.Sprint(rel))
			}
			fmt.Printf("\n%d config file(s) found\n", len(files))
			return nil
		},
	}
)

func init() {
	ScanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "enable verbose output")
	ScanCmd.Flags().BoolVarP(&scanDebug, "debug", "d", false, "enable debug output")
	ScanCmd.Flags().BoolVar(&scanJSONOutput, "json", false, "output in JSON format")
}

// ResetScanState resets all scan command global variables to their default values for testing.
func ResetScanState() {
	scanVerbose = false
	scanDebug = false
	scanJSONOutput = false
}
