package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.weft.dev/weft/pkg/assets"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asset")

	ready := assets.FileExists(path)
	assert.False(t, ready())

	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	assert.True(t, ready())
}

func TestChecksumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asset")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	want, err := assets.Checksum(path)
	require.NoError(t, err)

	ready := assets.ChecksumFile(path, want)
	assert.True(t, ready())

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o600))
	assert.False(t, ready())
}

func TestChecksumMissingFile(t *testing.T) {
	_, err := assets.Checksum(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
