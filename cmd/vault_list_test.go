package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/envie-dev/envie-host/internal/vault"
)

func TestVaultListCommand(t *testing.T) {
	t.Run("lists keyed and legacy vault files", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-list-*")
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
		writeVaultFixture(t, tempDir, "vault.hold")

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"list"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("List command failed: %v", err)
		}

		if !strings.Contains(output, "vault_alice.hold") {
			t.Errorf("Expected keyed vault in output, got: %s", output)
		}
		if !strings.Contains(output, "vault.hold") {
			t.Errorf("Expected legacy vault in output, got: %s", output)
		}
		if !strings.Contains(output, "2 vault file(s)") {
			t.Errorf("Expected count line, got: %s", output)
		}
	})

	t.Run("empty storage root reports no vaults", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-list-*")
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
			return createTestCLI([]string{"list"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("List command failed: %v", err)
		}

		if !strings.Contains(output, "No vault files") {
			t.Errorf("Expected empty message, got: %s", output)
		}
	})

	t.Run("json output includes the legacy marker", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "envie-host-list-*")
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
		writeVaultFixture(t, tempDir, "snapshot.hold")
		writeVaultFixture(t, tempDir, "vault_bob.hold")

		output, err := captureOutput(func() error {
			return createTestCLI([]string{"list", "--json"}, false, false).Execute()
		})
		if err != nil {
			t.Fatalf("List command failed: %v", err)
		}

		var infos []vault.Info
		if err := json.Unmarshal([]byte(output), &infos); err != nil {
			t.Fatalf("Failed to parse JSON output: %v\noutput: %s", err, output)
		}
		if len(infos) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(infos))
		}
		legacyCount := 0
		for _, info := range infos {
			if info.Legacy {
				legacyCount++
			}
		}
		if legacyCount != 1 {
			t.Errorf("Expected exactly one legacy entry, got %d", legacyCount)
		}
	})
}
