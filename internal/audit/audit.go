package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/envie-dev/envie-host/internal/configs"
)

// FileName is the audit log file inside the storage root.
const FileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Username  string `json:"user"`    // OS user running the host.
	Install   string `json:"install"` // Installation UUID from host.toml.
	Operation string `json:"op"`      // Operation name.

	// Optional fields depending on operation.
	UserID       string   `json:"user_id,omitempty"`       // Vault owner (may be empty for legacy).
	Strategy     string   `json:"strategy,omitempty"`      // keyed or legacy.
	RemovedFiles []string `json:"removed_files,omitempty"` // For nuke.
	SaltCreated  bool     `json:"salt_created,omitempty"`  // For bootstrap.
}

// Log appends an entry to the audit log in the given storage root.
// If logging fails it simply returns; operations should not fail just
// because audit logging failed.
func Log(root string, entry Entry) {
	if root == "" {
		return
	}

	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := filepath.Join(root, FileName)

	// Open file for appending (create if doesn't exist).
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry is a convenience constructor that populates the host fields from
// settings and configuration.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}

	if configs.EnvieHostSettings != nil {
		entry.Username = configs.EnvieHostSettings.Username
	}
	if config, err := configs.LoadHostConfig(); err == nil {
		entry.Install = config.Host.InstallUUID
	}

	return entry
}

// LogPath returns the path to the audit log inside the storage root.
func LogPath(root string) string {
	return filepath.Join(root, FileName)
}

// ReadEntries reads all entries from the audit log in the storage root.
// Returns nil if the log doesn't exist.
func ReadEntries(root string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(root))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
