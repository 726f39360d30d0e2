// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and driving the real commands end to end.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/envie-dev/envie-host/internal/configs"
	logger "github.com/envie-dev/envie-host/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the host settings at temporary directories so
// commands never touch the real storage root or host.toml.
func setupTestEnvironment(t *testing.T, tempDir, tempConfigDir string) {
	originalSettings := configs.EnvieHostSettings

	t.Cleanup(func() {
		configs.EnvieHostSettings = originalSettings
		ResetGlobalState()
		ResetConfigState()
		ResetScanState()
	})

	configs.EnvieHostSettings = &configs.HostSettings{
		StorageRoot: tempDir,
		ConfigsPath: tempConfigDir,
		Username:    "testuser",
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a complete CLI instance for testing that runs the
// given vault subcommand through the real VaultCmd.
func createTestCLI(args []string, verboseFlag, debugFlag bool) *cobra.Command {
	// Set global flags for the actual command implementations.
	verbose = verboseFlag
	debug = debugFlag

	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	rootCmd := &cobra.Command{
		Use:   "envie-host",
		Short: "Envie Host - the desktop shell and vault lifecycle manager for Envie.",
	}

	rootCmd.AddCommand(VaultCmd)

	rootCmd.SetArgs(append([]string{"vault"}, args...))
	return rootCmd
}

// writeVaultFixture drops a vault file with dummy contents into dir.
func writeVaultFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("sealed"), 0600); err != nil {
		t.Fatalf("Failed to write vault fixture %s: %v", name, err)
	}
	return path
}
