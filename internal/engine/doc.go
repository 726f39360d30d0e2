// Package engine defines the seam between Envie Host and the encrypted
// secret-storage engine.
//
// The engine itself is an external collaborator: it writes and reads the
// vault files, and this repository never reimplements it. What the host does
// own is the wiring the engine needs at startup:
//
//   - the salt file (salt.txt) in the storage root, generated once and then
//     stable for the lifetime of the installation
//   - Argon2id key derivation from a password and that salt
//
// Concrete engines are injected through OpenFunc and consumed through the
// SecretStore interface.
package engine
