package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.weft.dev/weft/pkg/assets"
)

func TestCommandRunsAndSucceeds(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sub")

	err := assets.Command(context.Background(), "mkdir", "-p", target)
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCommandWrapsFailure(t *testing.T) {
	err := assets.Command(context.Background(), "false")
	require.Error(t, err)
}

func TestCommandRejectsUnknownBinary(t *testing.T) {
	err := assets.Command(context.Background(), "weft-assets-test-no-such-binary")
	require.Error(t, err)
}
