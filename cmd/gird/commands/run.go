package commands

import (
	"github.com/gird-dev/gird/internal/app"
	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <target>",
		Short: "Run the rule of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			question, _ := cmd.Flags().GetBool("question")
			outputSync, _ := cmd.Flags().GetBool("output-sync")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Run(cmd.Context(), app.RunConfig{
				Girdfile: c.girdfile(cmd),
				Target:   args[0],
				Question: question,
				Options: domain.RunOptions{
					DryRun:     dryRun,
					OutputSync: outputSync,
					Workers:    jobs,
				},
			})
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print the commands and function calls that would be executed, but do not execute them")
	cmd.Flags().BoolP("question", "q", false, "Do not run anything; exit zero if the target is up to date, nonzero otherwise")
	cmd.Flags().Bool("output-sync", false, "Collect the output of each rule together rather than interspersed with other rules")
	cmd.Flags().IntP("jobs", "j", 0, "Limit the number of rules running in parallel (0 = unbounded)")

	return cmd
}
