package workflows

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
	"github.com/envie-dev/envie-host/internal/vault"
)

func TestCheck_KeyedUser(t *testing.T) {
	root := makeRoot(t, "vault_alice.hold")

	result, err := Check(context.Background(), root, CheckOptions{UserID: "alice"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.Exists {
		t.Errorf("Expected vault to exist for alice")
	}
	if result.Strategy != "keyed" {
		t.Errorf("Strategy = %q, want keyed", result.Strategy)
	}
	if result.MatchedPath != filepath.Join(root, "vault_alice.hold") {
		t.Errorf("MatchedPath = %q, want the primary vault", result.MatchedPath)
	}

	// A different user does not match, regardless of alice's vault.
	result, err = Check(context.Background(), root, CheckOptions{UserID: "bob"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.Exists {
		t.Errorf("Expected no vault for bob")
	}
	if result.MatchedPath != "" {
		t.Errorf("MatchedPath = %q, want empty", result.MatchedPath)
	}
}

func TestCheck_LegacyFallback(t *testing.T) {
	root := makeRoot(t, vault.LegacyVaultFile)

	for _, userID := range []string{"", "legacy"} {
		result, err := Check(context.Background(), root, CheckOptions{UserID: userID})
		if err != nil {
			t.Fatalf("Check(%q) failed: %v", userID, err)
		}
		if !result.Exists {
			t.Errorf("Check(%q): expected legacy vault to be found", userID)
		}
		if result.Strategy != "legacy" {
			t.Errorf("Check(%q): Strategy = %q, want legacy", userID, result.Strategy)
		}
		if result.MatchedPath != filepath.Join(root, vault.LegacyVaultFile) {
			t.Errorf("Check(%q): MatchedPath = %q, want vault.hold", userID, result.MatchedPath)
		}
	}
}

func TestCheck_LegacyIgnoredForKeyedUser(t *testing.T) {
	root := makeRoot(t, vault.LegacyVaultFile, vault.LegacySnapshotFile)

	result, err := Check(context.Background(), root, CheckOptions{UserID: "carol"})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.Exists {
		t.Errorf("Legacy files must not satisfy a keyed check")
	}
}

func TestCheck_EmptyRootDirectory(t *testing.T) {
	root := makeRoot(t)

	result, err := Check(context.Background(), root, CheckOptions{UserID: ""})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.Exists {
		t.Errorf("Expected no vault in an empty root")
	}
}

func TestCheck_MissingRoot(t *testing.T) {
	_, err := Check(context.Background(), "", CheckOptions{UserID: "alice"})
	if !errors.Is(err, kerrors.ErrStorageRootUnresolved) {
		t.Errorf("Expected ErrStorageRootUnresolved, got: %v", err)
	}
}
