package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// On-disk names the Envie front-end depends on. These must not change:
// existing installations resolve their vaults by these exact names.
const (
	// LegacyVaultFile is the single pre-multi-user vault.
	LegacyVaultFile = "vault.hold"

	// LegacySnapshotFile is the secondary pre-multi-user artifact.
	LegacySnapshotFile = "snapshot.hold"

	// LegacyUserID is the sentinel user id that selects legacy resolution,
	// alongside the empty id.
	LegacyUserID = "legacy"
)

// Strategy selects how a user id maps onto vault files on disk.
type Strategy int

const (
	// Keyed resolution touches only vault_<user_id>.hold.
	Keyed Strategy = iota

	// Legacy resolution also considers the pre-multi-user files
	// vault.hold and snapshot.hold.
	Legacy
)

// String returns the strategy name for logs and JSON output.
func (s Strategy) String() string {
	if s == Legacy {
		return "legacy"
	}
	return "keyed"
}

// StrategyFor returns the resolution strategy for a user id. An empty id or
// the literal "legacy" selects Legacy resolution; anything else is Keyed.
func StrategyFor(userID string) Strategy {
	if userID == "" || userID == LegacyUserID {
		return Legacy
	}
	return Keyed
}

// Locator resolves, checks, and destroys per-user vault files under a storage
// root. It never creates or writes vault files; the secret-storage engine owns
// their contents.
//
// The caller is responsible for the storage root existing before any
// operation runs (see workflows.Bootstrap).
type Locator struct {
	// Root is the absolute storage root directory holding all vault files.
	Root string
}

// VaultFileName returns the file name for a user's vault: vault_<user_id>.hold.
func VaultFileName(userID string) string {
	return "vault_" + userID + ".hold"
}

// VaultPath returns the primary vault path for a user id.
func (l Locator) VaultPath(userID string) string {
	return filepath.Join(l.Root, VaultFileName(userID))
}

// CandidatePaths returns every path the given user id resolves to, primary
// first. Under Legacy resolution this includes the two pre-multi-user files.
func (l Locator) CandidatePaths(userID string) []string {
	paths := []string{l.VaultPath(userID)}
	if StrategyFor(userID) == Legacy {
		paths = append(paths,
			filepath.Join(l.Root, LegacyVaultFile),
			filepath.Join(l.Root, LegacySnapshotFile),
		)
	}
	return paths
}

// Exists reports whether a vault exists for the given user id.
//
// The primary vault_<user_id>.hold wins; under Legacy resolution either
// legacy file also counts. A stat failure degrades to "does not exist" and
// is never surfaced as an error.
func (l Locator) Exists(userID string) bool {
	if fileExists(l.VaultPath(userID)) {
		return true
	}
	if StrategyFor(userID) == Legacy {
		return fileExists(filepath.Join(l.Root, LegacyVaultFile)) ||
			fileExists(filepath.Join(l.Root, LegacySnapshotFile))
	}
	return false
}

// Destroy deletes every vault file the user id resolves to. Files that are
// already absent are skipped; that is a no-op, not an error.
//
// The per-file deletions are independent: every candidate is attempted even
// if an earlier one fails, and all failures are joined into the returned
// error. There is no rollback; files already removed stay removed.
func (l Locator) Destroy(userID string) error {
	var errs []error
	for _, path := range l.CandidatePaths(userID) {
		if !fileExists(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", filepath.Base(path), err))
		}
	}
	return errors.Join(errs...)
}

// fileExists reports whether path exists as a regular file. Any stat error
// counts as "does not exist"; existence probes swallow I/O errors.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
