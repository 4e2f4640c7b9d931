// Package app wires the CLI's adapters to the engine: it resolves a module
// identifier and task name to a root Node and drives a single Run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vito/progrock"

	"go.weft.dev/weft"
	"go.weft.dev/weft/internal/adapters/loader"
	loggerpkg "go.weft.dev/weft/internal/adapters/logger"
	progrockadapter "go.weft.dev/weft/internal/adapters/telemetry/progrock"
)

// RunOptions mirrors the CLI flags that affect a single Run.
type RunOptions struct {
	DryRun   bool
	Workers  int
	Verbose  bool
	Progress bool
}

// App holds nothing but the process's stdout/stderr; adapters are
// constructed per Run since each invocation may set its own verbosity.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an App writing diagnostics to the given streams.
func New(stdout, stderr io.Writer) *App {
	return &App{Stdout: stdout, Stderr: stderr}
}

// Resolve loads module and returns the root Node for taskname, or the
// module's single task if taskname is empty and exactly one is defined.
func (a *App) Resolve(module, taskname string) (*weft.Node, error) {
	m, err := loader.Load(module)
	if err != nil {
		return nil, err
	}

	if taskname == "" {
		if len(m.Tasks) != 1 {
			return nil, weft.ErrUnknownTask
		}
		for _, fn := range m.Tasks {
			return fn(), nil
		}
	}

	fn, ok := m.Tasks[taskname]
	if !ok {
		return nil, weft.ErrUnknownTask
	}
	return fn(), nil
}

// Show lists every task name module defines along with the first line of
// its documentation (-s flag), without executing anything.
func (a *App) Show(module string) error {
	m, err := loader.Load(module)
	if err != nil {
		return err
	}
	for name := range m.Tasks {
		doc := m.Docs[name]
		if doc == "" {
			fmt.Fprintln(a.Stdout, name)
			continue
		}
		fmt.Fprintf(a.Stdout, "%s: %s\n", name, doc)
	}
	return nil
}

// Run resolves module/taskname to a root Node and drives it to readiness,
// writing the diagnostic stream to a.Stderr and returning the Result.
func (a *App) Run(ctx context.Context, module, taskname string, opts RunOptions) (*weft.Result, error) {
	root, err := a.Resolve(module, taskname)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := loggerpkg.New(a.Stderr, level)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	runOpts := []weft.Option{
		weft.WithDryRun(opts.DryRun),
		weft.WithWorkers(workers),
		weft.WithLogger(log),
	}

	var rec *progrockadapter.Recorder
	if opts.Progress {
		rec = progrockadapter.New(progrock.NewTape())
		runOpts = append(runOpts, weft.WithTelemetry(rec))
	}

	res, err := weft.Run(ctx, root, runOpts...)
	if rec != nil {
		if closeErr := rec.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return res, err
}
