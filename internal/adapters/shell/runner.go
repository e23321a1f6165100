// Package shell provides the recipe runner adapter.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"go.trai.ch/zerr"
)

// shellPath is the interpreter used for command subrecipes.
const shellPath = "sh"

// Runner executes a rule's recipe. Command subrecipes run under sh;
// consecutive commands are concatenated into one script, so exported
// variables set by one command are visible to the following ones. Call
// subrecipes run in the current process.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer

	// flushMu serializes the atomic flushes of output-synced rules.
	flushMu sync.Mutex
}

// NewRunner creates a Runner writing recipe output to the process
// streams.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger, stdout: os.Stdout, stderr: os.Stderr}
}

// NewRunnerWithOutput creates a Runner writing recipe output to the given
// writers. Used by tests and by output capturing front-ends.
func NewRunnerWithOutput(logger ports.Logger, stdout, stderr io.Writer) *Runner {
	return &Runner{logger: logger, stdout: stdout, stderr: stderr}
}

// Run executes the recipe of rule. Subrecipes run in declaration order;
// the first failure aborts the rest. With opts.DryRun the trace is
// printed and nothing executes. With opts.OutputSync all output of the
// rule is buffered and flushed in a single write once the recipe
// finished.
//
// Call subrecipes see the rule's output stream through
// domain.RecipeOutput on their context, so their output is captured and
// output-synced like command output.
func (r *Runner) Run(ctx context.Context, rule *domain.Rule, opts domain.RunOptions) error {
	if len(rule.Recipe) == 0 {
		return nil
	}

	stdout, stderr := r.stdout, r.stderr
	var buf *bytes.Buffer
	if opts.OutputSync {
		buf = &bytes.Buffer{}
		stdout, stderr = buf, buf
		defer r.flush(buf)
	}

	// Group maximal runs of consecutive command subrecipes so each run
	// shares one shell session.
	pending := make([]string, 0, len(rule.Recipe))
	runPending := func() error {
		if len(pending) == 0 {
			return nil
		}
		err := r.runCommands(ctx, rule, pending, opts.DryRun, stdout, stderr)
		pending = pending[:0]
		return err
	}

	for _, sub := range rule.Recipe {
		switch sub.Kind() {
		case domain.SubRecipeCommand:
			pending = append(pending, sub.CommandText())
		case domain.SubRecipeCall:
			if err := runPending(); err != nil {
				return err
			}
			if err := r.runCall(ctx, sub, opts.DryRun, stdout); err != nil {
				return err
			}
		}
	}
	return runPending()
}

// runCommands executes one batch of consecutive commands as a single
// sh invocation. "set -e" makes the first non-zero exit abort the batch,
// and that exit status propagates verbatim.
func (r *Runner) runCommands(ctx context.Context, rule *domain.Rule, commands []string, dryRun bool, stdout, stderr io.Writer) error {
	if dryRun {
		for _, c := range commands {
			fmt.Fprintln(stdout, c)
		}
		return nil
	}

	script := "set -e\n" + strings.Join(commands, "\n")
	cmd := exec.CommandContext(ctx, shellPath, "-c", script) //nolint:gosec // user provided recipe
	cmd.Dir = rule.WorkDir
	cmd.Env = os.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(
			zerr.Wrap(domain.ErrRecipeFailed, err.Error()),
			"exit_code", exitCode),
			"command", strings.Join(commands, "; "),
		)
	}
	return nil
}

// runCall invokes one function subrecipe in-process.
func (r *Runner) runCall(ctx context.Context, sub domain.SubRecipe, dryRun bool, stdout io.Writer) error {
	if dryRun {
		fmt.Fprintf(stdout, "%s()\n", sub.Name())
		return nil
	}
	if err := sub.Invoke(domain.WithRecipeOutput(ctx, stdout)); err != nil {
		return zerr.With(
			zerr.Wrap(domain.ErrRecipeFailed, err.Error()),
			"function", sub.Name(),
		)
	}
	return nil
}

// flush writes a rule's buffered output in one piece so parallel rules do
// not interleave.
func (r *Runner) flush(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	r.flushMu.Lock()
	defer r.flushMu.Unlock()
	if _, err := r.stdout.Write(buf.Bytes()); err != nil {
		r.logger.Error(zerr.Wrap(err, "failed to flush recipe output"))
	}
}
