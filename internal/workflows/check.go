package workflows

import (
	"context"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
	"github.com/envie-dev/envie-host/internal/vault"
)

// CheckOptions configures the check workflow.
type CheckOptions struct {
	// UserID is the vault owner to check. Empty or "legacy" selects legacy
	// resolution.
	UserID string
}

// CheckResult contains the outcome of a vault existence check.
type CheckResult struct {
	// UserID echoes the requested owner.
	UserID string `json:"user_id"`

	// Strategy is the resolution strategy that was applied (keyed or legacy).
	Strategy string `json:"strategy"`

	// Exists reports whether any resolved vault file is present.
	Exists bool `json:"exists"`

	// MatchedPath is the first resolved file that exists, empty when none do.
	MatchedPath string `json:"matched_path,omitempty"`
}

// Check reports whether a vault exists for the given user.
//
// The existence probe itself cannot fail: stat errors degrade to "does not
// exist". The only error case is a missing storage root configuration.
func Check(ctx context.Context, root string, opts CheckOptions) (*CheckResult, error) {
	if root == "" {
		return nil, kerrors.ErrStorageRootUnresolved
	}

	locator := vault.Locator{Root: root}
	result := &CheckResult{
		UserID:   opts.UserID,
		Strategy: vault.StrategyFor(opts.UserID).String(),
	}

	for _, path := range locator.CandidatePaths(opts.UserID) {
		if fileExists(path) {
			result.Exists = true
			result.MatchedPath = path
			break
		}
	}

	return result, nil
}
