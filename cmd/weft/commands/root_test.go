package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.weft.dev/weft"
	"go.weft.dev/weft/cmd/weft/commands"
	"go.weft.dev/weft/internal/adapters/loader"
	"go.weft.dev/weft/internal/app"
)

func registerCommandsTestModule(t *testing.T) {
	t.Helper()
	loader.Register("cmdtest-module", &loader.Module{
		Name: "cmdtest-module",
		Tasks: map[string]loader.TaskFunc{
			"ready": func() *weft.Node {
				return weft.External(func(y *weft.Y) error {
					y.Name("ready")
					y.Assets(weft.AssetOf(weft.Asset{Ref: "x", Ready: func() bool { return true }}))
					return nil
				})
			},
			"blocked": func() *weft.Node {
				return weft.Basic(func(y *weft.Y) error {
					y.Name("blocked")
					y.Assets(weft.AssetOf(weft.Asset{Ref: "y", Ready: func() bool { return false }}))
					y.Requirements(weft.NoReqs())
					return nil
				})
			},
		},
		Docs: map[string]string{"ready": "always ready", "blocked": "never ready"},
	})
}

func newTestCLI(stdout *bytes.Buffer) *commands.CLI {
	a := app.New(stdout, &bytes.Buffer{})
	cli := commands.New(a)
	cli.SetOut(stdout)
	cli.SetContext(context.Background())
	return cli
}

func TestRootShowListsTasks(t *testing.T) {
	registerCommandsTestModule(t)
	var out bytes.Buffer
	cli := newTestCLI(&out)
	cli.SetArgs([]string{"cmdtest-module", "-s"})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "ready: always ready")
	assert.Contains(t, out.String(), "blocked: never ready")
}

func TestRootRunPrintsRequirementsBreakdown(t *testing.T) {
	registerCommandsTestModule(t)
	var out bytes.Buffer
	cli := newTestCLI(&out)
	cli.SetArgs([]string{"cmdtest-module", "blocked", "-r"})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "✖ blocked")
}

func TestRootRunEmitsGraph(t *testing.T) {
	registerCommandsTestModule(t)
	var out bytes.Buffer
	cli := newTestCLI(&out)
	cli.SetArgs([]string{"cmdtest-module", "ready", "-g"})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "digraph weft")
	assert.Contains(t, out.String(), "ready")
}

func TestRootRunUnknownModuleErrors(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&out)
	cli.SetArgs([]string{"cmdtest-module-does-not-exist", "task"})

	require.Error(t, cli.Execute())
}
