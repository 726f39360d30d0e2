package engine

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/envie-dev/envie-host/internal/errors"
	"golang.org/x/crypto/argon2"
)

// SaltFileName is the salt file the secret-storage engine is keyed with.
// The name is shared with existing installations and must not change.
const SaltFileName = "salt.txt"

// saltSize is the number of random bytes in a freshly generated salt.
const saltSize = 32

// Argon2id parameters for key stretching.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// SaltPath returns the path of the salt file inside the storage root.
func SaltPath(root string) string {
	return filepath.Join(root, SaltFileName)
}

// EnsureSalt returns the engine salt for the given storage root, generating
// and persisting a fresh one if none exists yet. The returned bool reports
// whether a new salt was created.
//
// A salt file of the wrong size is rejected with ErrSaltCorrupted rather than
// silently regenerated: regenerating would permanently lock out every vault
// keyed with the old salt.
func EnsureSalt(root string) ([]byte, bool, error) {
	path := SaltPath(root)

	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != saltSize {
			return nil, false, fmt.Errorf("%w: %s has %d bytes, want %d", kerrors.ErrSaltCorrupted, SaltFileName, len(data), saltSize)
		}
		return data, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("failed to read salt file: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, false, fmt.Errorf("failed to generate salt: %w", err)
	}

	if err := os.WriteFile(path, salt, 0600); err != nil {
		return nil, false, fmt.Errorf("failed to write salt file: %w", err)
	}

	return salt, true, nil
}

// DeriveKey uses Argon2id to stretch a password and salt into a 32-byte
// engine key.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
