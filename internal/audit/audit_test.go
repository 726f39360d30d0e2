package audit

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestLog_CreatesFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	entry := Entry{
		Username:  "testuser",
		Operation: "nuke",
		UserID:    "alice",
		Strategy:  "keyed",
	}
	Log(tmpDir, entry)

	if _, err := os.Stat(LogPath(tmpDir)); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	Log(tmpDir, Entry{Username: "alice", Operation: "bootstrap"})
	Log(tmpDir, Entry{Username: "alice", Operation: "nuke", UserID: "alice"})
	Log(tmpDir, Entry{Username: "bob", Operation: "nuke", UserID: "", Strategy: "legacy"})

	entries, err := ReadEntries(tmpDir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Operation != "bootstrap" {
		t.Errorf("entries[0].Operation = %q, want bootstrap", entries[0].Operation)
	}
	if entries[2].Strategy != "legacy" {
		t.Errorf("entries[2].Strategy = %q, want legacy", entries[2].Strategy)
	}
}

func TestLog_SetsTimestamp(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	Log(tmpDir, Entry{Operation: "nuke"})

	entries, err := ReadEntries(tmpDir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Timestamp == "" {
		t.Errorf("Expected timestamp to be set")
	}
	if !strings.HasSuffix(entries[0].Timestamp, "Z") {
		t.Errorf("Expected UTC timestamp, got %q", entries[0].Timestamp)
	}
}

func TestLog_EmptyRootIsNoOp(t *testing.T) {
	// Must not panic or create anything.
	Log("", Entry{Operation: "nuke"})
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	good, err := json.Marshal(Entry{Operation: "nuke", UserID: "alice"})
	if err != nil {
		t.Fatalf("Failed to marshal entry: %v", err)
	}

	data := []byte(string(good) + "\nnot json at all\n\n" + string(good) + "\n")

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries after skipping malformed lines, got %d", len(entries))
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	entries, err := ReadEntries(tmpDir)
	if err != nil {
		t.Fatalf("ReadEntries on missing log failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries for missing log, got %v", entries)
	}
}
