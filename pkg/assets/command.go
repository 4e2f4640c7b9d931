package assets

import (
	"context"
	"os"
	"os/exec"

	"go.trai.ch/zerr"
)

// Command runs name with args as a Basic task's action body, streaming its
// output to stdout/stderr. It is meant to be called from inside a task
// function, after the requirements stage, as the expression that produces
// the action's error.
func Command(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "command failed"), "command", name)
	}
	return nil
}
