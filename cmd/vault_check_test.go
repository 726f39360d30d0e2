package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/envie-dev/envie-host/internal/workflows"
)

func TestVaultCheckCommand(t *testing.T) {
	t.Run("reports a keyed vault as present", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-check-*")
		if err != nil {
			t.Fatalf("Failed to create temp directory: %v", err)
		}
		defer os.RemoveAll(tempDir)
		tempConfigDir, err := os.MkdirTemp("", "envie-host-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp config directory: %v", err)
		}
		defer os.RemoveAll(tempConfigDir)

		setupTestEnvironment(t, tempDir, tempConfigDir)
		writeVaultFixture(t, tempDir, "vault_alice.hold")

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"check", "alice"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("Check command failed: %v", err)
		}

		if !strings.Contains(output, "Vault present") {
			t.Errorf("Expected presence message, got: %s", output)
		}
		if !strings.Contains(output, "alice") {
			t.Errorf("Expected user id in output, got: %s", output)
		}
	})

	t.Run("absent vault reports not found without failing", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-check-*")
		if err != nil {
			t.Fatalf("Failed to create temp directory: %v", err)
		}
		defer os.RemoveAll(tempDir)
		tempConfigDir, err := os.MkdirTemp("", "envie-host-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp config directory: %v", err)
		}
		defer os.RemoveAll(tempConfigDir)

		setupTestEnvironment(t, tempDir, tempConfigDir)

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"check", "alice"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("Check command should not fail for an absent vault: %v", err)
		}

		if !strings.Contains(output, "No vault found") {
			t.Errorf("Expected absence message, got: %s", output)
		}
		if !strings.Contains(output, "vault_alice.hold") {
			t.Errorf("Expected the expected path in output, got: %s", output)
		}
	})

	t.Run("no user id falls back to legacy files", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-check-*")
		if err != nil {
			t.Fatalf("Failed to create temp directory: %v", err)
		}
		defer os.RemoveAll(tempDir)
		tempConfigDir, err := os.MkdirTemp("", "envie-host-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp config directory: %v", err)
		}
		defer os.RemoveAll(tempConfigDir)

		setupTestEnvironment(t, tempDir, tempConfigDir)
		writeVaultFixture(t, tempDir, "vault.hold")

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"check"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("Check command failed: %v", err)
		}

		if !strings.Contains(output, "Vault present") {
			t.Errorf("Expected presence message, got: %s", output)
		}
		if !strings.Contains(output, "(legacy)") {
			t.Errorf("Expected legacy marker in output, got: %s", output)
		}
	})

	t.Run("json output is machine readable", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-check-*")
		if err != nil {
			t.Fatalf("Failed to create temp directory: %v", err)
		}
		defer os.RemoveAll(tempDir)
		tempConfigDir, err := os.MkdirTemp("", "envie-host-config-*")
		if err != nil {
			t.Fatalf("Failed to create temp config directory: %v", err)
		}
		defer os.RemoveAll(tempConfigDir)

		setupTestEnvironment(t, tempDir, tempConfigDir)
		writeVaultFixture(t, tempDir, "vault_bob.hold")

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"check", "bob", "--json"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("Check command failed: %v", err)
		}

		var result workflows.CheckResult
		if err := json.Unmarshal([]byte(output), &result); err != nil {
			t.Fatalf("Failed to parse JSON output: %v\noutput: %s", err, output)
		}
		if !result.Exists {
			t.Errorf("Expected exists=true, got: %+v", result)
		}
		if result.UserID != "bob" {
			t.Errorf("Expected user id bob, got: %s", result.UserID)
		}
	})
}
