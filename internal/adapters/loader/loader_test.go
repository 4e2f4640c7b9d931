package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.weft.dev/weft"
	"go.weft.dev/weft/internal/adapters/loader"
)

func TestRegisterAndLoad(t *testing.T) {
	loader.Register("loadertest-basic", &loader.Module{
		Name: "loadertest-basic",
		Tasks: map[string]loader.TaskFunc{
			"only": func() *weft.Node {
				return weft.External(func(y *weft.Y) error {
					y.Name("only")
					y.Assets(weft.AssetOf(weft.Asset{Ref: "x", Ready: func() bool { return true }}))
					return nil
				})
			},
		},
		Docs: map[string]string{"only": "the only task"},
	})

	m, err := loader.Load("loadertest-basic")
	require.NoError(t, err)
	assert.Equal(t, "loadertest-basic", m.Name)
	require.Contains(t, m.Tasks, "only")
	assert.Equal(t, "the only task", m.Docs["only"])
}

func TestLoadUnknownIdentifierIsErrUnknownModule(t *testing.T) {
	_, err := loader.Load("loadertest-does-not-exist")
	require.ErrorIs(t, err, weft.ErrUnknownModule)
}

func TestLoadRejectsNonPluginFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-plugin.so")
	require.NoError(t, os.WriteFile(path, []byte("not an elf"), 0o600))

	_, err := loader.Load(path)
	require.ErrorIs(t, err, weft.ErrUnknownModule)
}
