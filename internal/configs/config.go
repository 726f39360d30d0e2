package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Defaults for the desktop window chrome, consumed by the webview shell.
const (
	DefaultWindowTitle  = "Envie"
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
)

type HostConfig struct {
	Host   Host   `toml:"host"`
	Window Window `toml:"window"`
}

type Host struct {
	// InstallUUID identifies this installation in audit entries.
	InstallUUID string `toml:"install_uuid"`

	// StorageDir overrides the platform-default storage root when set.
	StorageDir string `toml:"storage_dir,omitempty"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// LoadHostConfig loads the host configuration from host.toml.
// A missing file yields a config with window defaults and no overrides.
func LoadHostConfig() (*HostConfig, error) {
	configPath := filepath.Join(EnvieHostSettings.ConfigsPath, "host.toml")

	config := &HostConfig{
		Window: Window{
			Title:  DefaultWindowTitle,
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load host config: %w", err)
	}

	return config, nil
}

// SaveHostConfig saves the host configuration to host.toml.
func SaveHostConfig(config *HostConfig) error {
	configPath := filepath.Join(EnvieHostSettings.ConfigsPath, "host.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save host config: %w", err)
	}

	return nil
}

// EnsureHostConfig ensures the host configuration exists and has an
// installation UUID, assigning and persisting one on first run.
func EnsureHostConfig() (*HostConfig, error) {
	config, err := LoadHostConfig()
	if err != nil {
		return nil, err
	}

	if config.Host.InstallUUID == "" {
		config.Host.InstallUUID = uuid.New().String()
		if err := SaveHostConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
