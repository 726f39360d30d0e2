package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/envie-dev/envie-host/internal/audit"
	kerrors "github.com/envie-dev/envie-host/internal/errors"
	"github.com/envie-dev/envie-host/internal/vault"
)

// NukeOptions configures the nuke workflow.
type NukeOptions struct {
	// UserID is the vault owner to destroy. Empty or "legacy" also destroys
	// the pre-multi-user files.
	UserID string

	// DryRun previews which files would be removed without deleting anything.
	DryRun bool
}

// NukeResult contains the outcome of a nuke operation.
type NukeResult struct {
	// UserID echoes the requested owner.
	UserID string `json:"user_id"`

	// Strategy is the resolution strategy that was applied.
	Strategy string `json:"strategy"`

	// RemovedFiles lists the file names that were deleted (empty on dry-run).
	RemovedFiles []string `json:"removed_files,omitempty"`

	// FilesToRemove lists the files that would be deleted (for dry-run).
	FilesToRemove []string `json:"files_to_remove,omitempty"`

	// DryRun indicates whether this was a dry-run (no changes made).
	DryRun bool `json:"dry_run"`
}

// Nuke destroys the vault files for the given user.
//
// Every resolved file is attempted independently; failures are collected and
// returned as one joined error, with no rollback of files already removed.
// Destroying an already-absent vault is a no-op, not an error.
//
// Successful (non-dry-run) nukes are recorded in the audit trail.
func Nuke(ctx context.Context, root string, opts NukeOptions) (*NukeResult, error) {
	if root == "" {
		return nil, kerrors.ErrStorageRootUnresolved
	}

	locator := vault.Locator{Root: root}
	strategy := vault.StrategyFor(opts.UserID)

	var present []string
	for _, path := range locator.CandidatePaths(opts.UserID) {
		if fileExists(path) {
			present = append(present, path)
		}
	}

	result := &NukeResult{
		UserID:   opts.UserID,
		Strategy: strategy.String(),
		DryRun:   opts.DryRun,
	}

	if opts.DryRun {
		result.FilesToRemove = present
		return result, nil
	}

	if err := locator.Destroy(opts.UserID); err != nil {
		return nil, fmt.Errorf("failed to nuke vault: %w", err)
	}

	for _, path := range present {
		result.RemovedFiles = append(result.RemovedFiles, filepath.Base(path))
	}

	if len(result.RemovedFiles) > 0 {
		entry := audit.NewEntry("nuke")
		entry.UserID = opts.UserID
		entry.Strategy = strategy.String()
		entry.RemovedFiles = result.RemovedFiles
		audit.Log(root, entry)
	}

	return result, nil
}

// fileExists reports whether path exists as a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
