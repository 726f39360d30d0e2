// Package audit provides an append-only trail of vault operations.
//
// Entries are written as JSON Lines to audit.jsonl inside the storage root,
// one object per line. Destroying a vault is irreversible, so the trail
// records who nuked what and when, plus bootstrap events.
//
// Logging is best-effort by design: a vault operation never fails because
// the audit log could not be written, and malformed lines are skipped when
// reading the log back.
package audit
