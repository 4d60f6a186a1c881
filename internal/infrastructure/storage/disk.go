package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore implements ports.FileStore on a local directory. Files are
// written under "<unix-millis>-<base name>" so repeated uploads of the same
// file name never collide on the filesystem; dedup is decided by fingerprint,
// not by name.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save streams r into the store while hashing it, so the fingerprint always
// covers exactly the bytes on disk. A zero-length stream is valid and yields
// the SHA-256 of empty input.
func (s *DiskStore) Save(fileName string, r io.Reader) (string, string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(fileName))
	locator := filepath.Join(s.dir, name)
	f, err := os.OpenFile(locator, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	h := sha256.New()
	_, err = io.Copy(io.MultiWriter(f, h), r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(locator)
		return "", "", fmt.Errorf("write file: %w", err)
	}
	return locator, hex.EncodeToString(h.Sum(nil)), nil
}

// Remove discards a stored file; an already missing file is not an error.
func (s *DiskStore) Remove(locator string) error {
	if err := os.Remove(locator); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitize strips path separators and anything else that could escape the
// store directory from a client-supplied file name.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
