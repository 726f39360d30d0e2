package engine

// SecretStore is the encrypted secret-storage engine the host wires in at
// startup. The engine owns the vault file's contents and format; the host
// only names, locates, and deletes the files (see the vault package).
//
// Implementations must return ErrStoreClosed from every method once Close
// has been called.
type SecretStore interface {
	// Get returns the secret stored under key.
	Get(key string) ([]byte, error)

	// Set stores value under key. The change is not durable until Save.
	Set(key string, value []byte) error

	// Save persists pending changes to the vault file.
	Save() error

	// Close releases the store. Pending unsaved changes are discarded.
	Close() error
}

// OpenFunc constructs a SecretStore over the vault file at vaultPath, keyed
// by the Argon2 salt file at saltPath. The host injects a concrete engine
// here; it never implements one itself.
type OpenFunc func(vaultPath, saltPath string) (SecretStore, error)
