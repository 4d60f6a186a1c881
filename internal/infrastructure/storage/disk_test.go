package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveFingerprintsContent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	locator, fingerprint, err := store.Save("cat.png", strings.NewReader("cat-bytes"))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("cat-bytes"))
	require.Equal(t, hex.EncodeToString(sum[:]), fingerprint)

	data, err := os.ReadFile(locator)
	require.NoError(t, err)
	require.Equal(t, "cat-bytes", string(data))
}

func TestSaveSameContentSameFingerprint(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	loc1, fp1, err := store.Save("first.png", strings.NewReader("identical"))
	require.NoError(t, err)
	loc2, fp2, err := store.Save("second.png", strings.NewReader("identical"))
	require.NoError(t, err)

	// identical bytes under different names: same fingerprint, distinct files
	require.Equal(t, fp1, fp2)
	require.NotEqual(t, loc1, loc2)
}

func TestSaveEmptyStream(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	locator, fingerprint, err := store.Save("empty.png", strings.NewReader(""))
	require.NoError(t, err)

	sum := sha256.Sum256(nil)
	require.Equal(t, hex.EncodeToString(sum[:]), fingerprint)
	info, err := os.Stat(locator)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestSaveSanitizesFileName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	locator, _, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(locator))
	require.True(t, strings.HasSuffix(locator, "-passwd"))
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	locator, _, err := store.Save("cat.png", strings.NewReader("cat-bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(locator))
	_, err = os.Stat(locator)
	require.True(t, os.IsNotExist(err))
	require.NoError(t, store.Remove(locator))
}
