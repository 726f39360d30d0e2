package configs

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
)

type HostSettings struct {
	// StorageRoot is the app-local data directory holding the vault files,
	// the engine salt, and the audit log.
	StorageRoot string

	// ConfigsPath is the directory holding host.toml.
	ConfigsPath string

	// Username is the OS user running the host, recorded in audit entries.
	Username string
}

var EnvieHostSettings *HostSettings

func init() {
	settings, err := resolveSettings()
	if err != nil {
		// Nothing can run without a storage root (fatal by design).
		log.Fatalf("error resolving host settings: %s", err)
	}
	EnvieHostSettings = settings
}

// resolveSettings computes the host's directories from the platform
// conventions: data under XDG_DATA_HOME (or ~/.local/share), configuration
// under the user config directory.
func resolveSettings() (*HostSettings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrStorageRootUnresolved, err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username := ""
	if current, err := user.Current(); err == nil {
		username = current.Username
	}

	return &HostSettings{
		StorageRoot: filepath.Join(dataDir, "envie"),
		ConfigsPath: filepath.Join(configDir, "envie"),
		Username:    username,
	}, nil
}

// StorageRoot returns the effective storage root: the host.toml override if
// one is set, otherwise the platform default from the settings.
func StorageRoot() (string, error) {
	if EnvieHostSettings == nil || EnvieHostSettings.StorageRoot == "" {
		return "", kerrors.ErrStorageRootUnresolved
	}

	config, err := LoadHostConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load host config: %w", err)
	}
	if config.Host.StorageDir != "" {
		return config.Host.StorageDir, nil
	}

	return EnvieHostSettings.StorageRoot, nil
}

// EnsureStorageRoot creates the storage root if it does not exist yet.
// The directory is private to the user; the vault files inside it hold
// encrypted secrets.
func EnsureStorageRoot(root string) error {
	if root == "" {
		return kerrors.ErrStorageRootUnresolved
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", kerrors.ErrStorageRootNotDirectory, root)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check storage root: %w", err)
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return fmt.Errorf("failed to create storage root: %w", err)
	}
	return nil
}
