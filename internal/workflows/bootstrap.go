package workflows

import (
	"context"
	"fmt"

	"github.com/envie-dev/envie-host/internal/audit"
	"github.com/envie-dev/envie-host/internal/configs"
	"github.com/envie-dev/envie-host/internal/engine"
)

// BootstrapResult contains the outcome of host bootstrap.
type BootstrapResult struct {
	// Root is the storage root that was ensured.
	Root string `json:"root"`

	// SaltPath is the engine salt file inside the root.
	SaltPath string `json:"salt_path"`

	// SaltCreated reports whether a fresh salt was generated on this run.
	SaltCreated bool `json:"salt_created"`

	// InstallUUID identifies this installation.
	InstallUUID string `json:"install_uuid"`
}

// Bootstrap prepares the host's on-disk state: it creates the storage root
// if absent, ensures the engine salt exists, and assigns the installation
// UUID on first run. This mirrors the desktop shell's startup duties and
// must succeed before the secret-storage engine can be opened.
func Bootstrap(ctx context.Context, root string) (*BootstrapResult, error) {
	if err := configs.EnsureStorageRoot(root); err != nil {
		return nil, err
	}

	_, created, err := engine.EnsureSalt(root)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure engine salt: %w", err)
	}

	config, err := configs.EnsureHostConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure host config: %w", err)
	}

	entry := audit.NewEntry("bootstrap")
	entry.SaltCreated = created
	audit.Log(root, entry)

	return &BootstrapResult{
		Root:        root,
		SaltPath:    engine.SaltPath(root),
		SaltCreated: created,
		InstallUUID: config.Host.InstallUUID,
	}, nil
}
