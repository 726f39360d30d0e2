// Package vault resolves, checks, and destroys per-user vault files.
//
// Each logical user has one vault file in the storage root, named by a fixed
// template:
//
//	vault_<user_id>.hold
//
// Two older files predate multi-user support and are retained for backward
// compatibility:
//
//	vault.hold     (the original single vault)
//	snapshot.hold  (its secondary snapshot)
//
// # Resolution Strategies
//
// A user id maps to files through one of two strategies, selected by a single
// predicate rather than scattered conditionals:
//
//   - Keyed: a non-empty id other than "legacy" touches only its own
//     vault_<user_id>.hold, regardless of what legacy files exist.
//   - Legacy: an empty id or the literal "legacy" also considers both
//     pre-multi-user files, for existence checks and for destruction.
//
// # Ownership
//
// This package never creates or writes a vault file. Contents and format
// belong to the secret-storage engine (see the engine package); the locator
// only answers "is it there?" and "remove it".
//
// Existence checks swallow I/O errors and degrade to "does not exist".
// Destruction attempts every resolved file independently and joins the
// failures; partial deletion is an accepted terminal state.
package vault
