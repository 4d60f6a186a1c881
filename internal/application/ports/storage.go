package ports

import "io"

// FileStore persists uploaded artifacts and fingerprints them.
type FileStore interface {
	// Save streams r to storage under a unique name derived from fileName and
	// returns the storage locator plus the hex SHA-256 fingerprint of the
	// written bytes. The fingerprint is computed over the exact bytes written,
	// so it is safe to use for dedup decisions immediately after Save returns.
	Save(fileName string, r io.Reader) (locator, fingerprint string, err error)
	// Remove discards a previously saved artifact, e.g. when the dedup gate
	// rejects it. Removing an already absent locator is not an error.
	Remove(locator string) error
}
