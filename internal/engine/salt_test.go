package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
)

func TestEnsureSalt_CreatesOnFirstCall(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-engine-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	salt, created, err := EnsureSalt(tmpDir)
	if err != nil {
		t.Fatalf("EnsureSalt failed: %v", err)
	}
	if !created {
		t.Errorf("Expected created=true on first call")
	}
	if len(salt) != saltSize {
		t.Errorf("Expected %d-byte salt, got %d", saltSize, len(salt))
	}

	info, err := os.Stat(SaltPath(tmpDir))
	if err != nil {
		t.Fatalf("Salt file was not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Salt file permissions = %o, want 0600", perm)
	}
}

func TestEnsureSalt_StableAcrossCalls(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-engine-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	first, _, err := EnsureSalt(tmpDir)
	if err != nil {
		t.Fatalf("First EnsureSalt failed: %v", err)
	}

	second, created, err := EnsureSalt(tmpDir)
	if err != nil {
		t.Fatalf("Second EnsureSalt failed: %v", err)
	}
	if created {
		t.Errorf("Expected created=false on second call")
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Salt changed between calls")
	}
}

func TestEnsureSalt_RejectsCorruptedSalt(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "envie-engine-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// A truncated salt must never be silently regenerated.
	if err := os.WriteFile(filepath.Join(tmpDir, SaltFileName), []byte("short"), 0600); err != nil {
		t.Fatalf("Failed to write truncated salt: %v", err)
	}

	_, _, err = EnsureSalt(tmpDir)
	if !errors.Is(err, kerrors.ErrSaltCorrupted) {
		t.Errorf("Expected ErrSaltCorrupted, got: %v", err)
	}
}

func TestDeriveKey(t *testing.T) {
	password := []byte("correct horse battery staple")
	salt := bytes.Repeat([]byte{0x42}, saltSize)

	key := DeriveKey(password, salt)
	if len(key) != argonKeyLen {
		t.Fatalf("Expected %d-byte key, got %d", argonKeyLen, len(key))
	}

	// Deterministic for the same inputs.
	if !bytes.Equal(key, DeriveKey(password, salt)) {
		t.Errorf("DeriveKey is not deterministic")
	}

	// Different salt yields a different key.
	otherSalt := bytes.Repeat([]byte{0x43}, saltSize)
	if bytes.Equal(key, DeriveKey(password, otherSalt)) {
		t.Errorf("DeriveKey ignored the salt")
	}

	// Different password yields a different key.
	if bytes.Equal(key, DeriveKey([]byte("other"), salt)) {
		t.Errorf("DeriveKey ignored the password")
	}
}
