// Package commands implements the weft CLI's command-line surface.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	weft "go.weft.dev/weft"
	"go.weft.dev/weft/internal/adapters/config"
	"go.weft.dev/weft/internal/app"
	"go.weft.dev/weft/internal/build"
	"go.weft.dev/weft/internal/ui/style"
)

// CLI wraps the root cobra.Command bound to an App.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New builds the weft root command: `weft <module> [task]`, with flags for
// dry-run, graph output, task listing, concurrency, and verbosity.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "weft <module> [task]",
		Short:         "An asset-driven task scheduler",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runE,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("dry-run", "d", false, "Suppress all action execution")
	rootCmd.Flags().BoolP("graph", "g", false, "Emit the DOT rendering of the final graph after running")
	rootCmd.Flags().BoolP("show", "s", false, "List the module's task names and docs; execute nothing")
	rootCmd.Flags().IntP("threads", "t", 1, "Concurrency level W")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug-level diagnostics")
	rootCmd.Flags().BoolP("progress", "p", false, "Record a progress trace of the run")
	rootCmd.Flags().BoolP("requirements", "r", false, "Print a readiness breakdown for every task visited")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	module := args[0]
	var taskname string
	if len(args) > 1 {
		taskname = args[1]
	}

	show, _ := cmd.Flags().GetBool("show")
	if show {
		return c.app.Show(module)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	graph, _ := cmd.Flags().GetBool("graph")
	threads, _ := cmd.Flags().GetInt("threads")
	verbose, _ := cmd.Flags().GetBool("verbose")
	progress, _ := cmd.Flags().GetBool("progress")
	requirements, _ := cmd.Flags().GetBool("requirements")

	if cwd, err := os.Getwd(); err == nil {
		cfg, err := config.Load(cwd)
		switch {
		case err == nil:
			if !cmd.Flags().Changed("dry-run") {
				dryRun = cfg.DryRun
			}
			if !cmd.Flags().Changed("threads") && cfg.Workers > 0 {
				threads = cfg.Workers
			}
			if !cmd.Flags().Changed("verbose") && cfg.LogLevel != "" {
				verbose = strings.EqualFold(cfg.LogLevel, "debug")
			}
		case errors.Is(err, config.ErrNotFound):
			// No .weft.yaml between cwd and the filesystem root; flag
			// defaults stand.
		default:
			return err
		}
	}

	res, err := c.app.Run(cmd.Context(), module, taskname, app.RunOptions{
		DryRun:   dryRun,
		Workers:  threads,
		Verbose:  verbose,
		Progress: progress,
	})
	if err != nil {
		return err
	}

	if requirements {
		printRequirements(cmd.OutOrStdout(), res.Records)
	}

	if graph {
		fmt.Fprint(cmd.OutOrStdout(), res.DOT())
	}

	// Zero exit even when the workflow ended not-ready — only engine-level
	// errors (already returned above) are non-zero.
	return nil
}

// printRequirements renders one ✔/✖ line per visited task, followed by an
// indented ✔/✖ line per requirement the scheduler weighed in its verdict.
func printRequirements(w io.Writer, records []weft.Record) {
	for _, rec := range records {
		taskMarker := style.NotReady
		if rec.Ready {
			taskMarker = style.Ready
		}
		fmt.Fprintf(w, "%s %s\n", taskMarker, rec.Taskname)
		for _, req := range rec.Requirements {
			reqMarker := style.NotReady
			if req.Ready {
				reqMarker = style.Ready
			}
			fmt.Fprintf(w, "  %s %s\n", reqMarker, req.Taskname)
		}
		if rec.External && !rec.Ready {
			fmt.Fprintf(w, "  %s external asset not ready\n", style.Warning)
		}
	}
}

// Execute runs the root command.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// SetArgs sets the root command's arguments, for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetContext binds ctx to the root command.
func (c *CLI) SetContext(ctx context.Context) {
	c.rootCmd.SetContext(ctx)
}

// SetOut redirects the root command's stdout, for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
