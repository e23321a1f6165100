// Package commands implements the CLI commands for the gird task runner.
package commands

import (
	"context"
	"io"

	"github.com/gird-dev/gird/internal/app"
	"github.com/spf13/cobra"
)

// defaultGirdfile is the rules file used when -f is not given.
const defaultGirdfile = "girdfile.yaml"

// CLI represents the command line interface for gird.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gird",
		Short:         "A Make-like incremental task runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("girdfile", "f", defaultGirdfile, "Path to the file with rule definitions")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) girdfile(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("girdfile")
	if err != nil || path == "" {
		return defaultGirdfile
	}
	return path
}
