// Package errors provides typed error values for Envie Host.
//
// Using sentinel errors allows callers to handle specific error conditions
// with errors.Is checks instead of string matching:
//
//	if errors.Is(err, ErrStorageRootUnresolved) {
//		// abort: nothing can run without a storage root
//	}
//
// Errors are grouped by the subsystem they belong to: storage root
// resolution, the secret-storage engine seam, and config-file discovery.
//
// Existence checks on vault files deliberately have no error values here;
// a failed stat degrades to "does not exist" and is never surfaced.
package errors
