// Package main is the entry point for the gird task runner.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gird-dev/gird/cmd/gird/commands"
	"github.com/gird-dev/gird/internal/app"
	_ "github.com/gird-dev/gird/internal/wiring"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	defer components.Tracer.Close()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an execution error to a process exit code. A recipe that
// exited with a nonzero status propagates that status verbatim; every other
// failure is reported as 1.
func exitCode(err error) int {
	if code, ok := findExitCode(err); ok {
		return code
	}
	return 1
}

// findExitCode searches the error tree for zerr "exit_code" metadata. The
// scheduler aggregates failures with errors.Join, so the walk must follow
// multi-error branches, not just the single-unwrap chain.
func findExitCode(err error) (int, bool) {
	for err != nil {
		if zErr, ok := err.(*zerr.Error); ok {
			if code, ok := zErr.Metadata()["exit_code"].(int); ok {
				return code, true
			}
		}
		switch unwrapped := err.(type) {
		case interface{ Unwrap() error }:
			err = unwrapped.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range unwrapped.Unwrap() {
				if code, ok := findExitCode(e); ok {
					return code, true
				}
			}
			return 0, false
		default:
			return 0, false
		}
	}
	return 0, false
}
