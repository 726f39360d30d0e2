package errors

import "errors"

// Storage errors indicate issues with the host's storage root.
var (
	// ErrStorageRootUnresolved indicates the storage root directory could not
	// be determined. Fatal at startup; no vault operation can run without it.
	ErrStorageRootUnresolved = errors.New("storage root could not be resolved")

	// ErrStorageRootNotDirectory indicates the storage root path exists but is
	// not a directory.
	ErrStorageRootNotDirectory = errors.New("storage root exists but is not a directory")
)

// Engine errors indicate issues with the secret-storage engine seam.
var (
	// ErrSaltCorrupted indicates the salt file exists but has the wrong size.
	ErrSaltCorrupted = errors.New("salt file is corrupted")

	// ErrStoreClosed indicates an operation was attempted on a closed secret store.
	ErrStoreClosed = errors.New("secret store is closed")
)

// Scan errors indicate issues with config-file discovery.
var (
	// ErrNoFilesFound indicates no config files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching config files found")

	// ErrInvalidFileType indicates the file is not a recognized config file.
	ErrInvalidFileType = errors.New("invalid file type")
)
