// Package main is the entry point for the weft CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.weft.dev/weft/cmd/weft/commands"
	_ "go.weft.dev/weft/examples/pipeline"
	"go.weft.dev/weft/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New(os.Stdout, os.Stderr)
	cli := commands.New(a)
	cli.SetContext(ctx)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
