package commands

import (
	"fmt"
	"strings"

	"github.com/gird-dev/gird/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rules defined in the girdfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			question, _ := cmd.Flags().GetBool("question")

			infos, err := c.app.List(app.ListConfig{
				Girdfile: c.girdfile(cmd),
				All:      all,
				Question: question,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, info := range infos {
				prefix := ""
				helpIndent := "    "
				if question {
					prefix = "  "
					helpIndent = "      "
					if info.Outdated {
						prefix = "* "
					}
				}
				fmt.Fprintln(out, prefix+info.Target)
				if info.Help != "" {
					for line := range strings.SplitSeq(info.Help, "\n") {
						fmt.Fprintln(out, helpIndent+line)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Include also rules defined as unlisted")
	cmd.Flags().BoolP("question", "q", false, "Mark with '*' the rules with a non-phony target that is not up to date")

	return cmd
}
