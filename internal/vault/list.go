package vault

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Info describes a single vault file found in the storage root.
type Info struct {
	// UserID is the id parsed from the file name. Empty for the legacy files
	// and for vault_.hold.
	UserID string `json:"user_id"`

	// Name is the bare file name inside the storage root.
	Name string `json:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ModTime is the last modification time.
	ModTime time.Time `json:"mod_time"`

	// Legacy marks the pre-multi-user files vault.hold and snapshot.hold.
	Legacy bool `json:"legacy"`
}

// List enumerates the vault files in the storage root: every vault_*.hold
// plus the two legacy files if present. Other files in the root (salt, audit
// log) are never reported.
func (l Locator) List() ([]Info, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read storage root: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		legacy := name == LegacyVaultFile || name == LegacySnapshotFile
		keyed := strings.HasPrefix(name, "vault_") && strings.HasSuffix(name, ".hold")
		if !legacy && !keyed {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			// Raced with a deletion; skip.
			continue
		}

		info := Info{
			Name:    name,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
			Legacy:  legacy,
		}
		if keyed {
			info.UserID = strings.TrimSuffix(strings.TrimPrefix(name, "vault_"), ".hold")
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
