// Stats command summarizes an acronym's predicted confidences.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <acronym>",
		Short: "Show average, min and max predicted confidence",
		Long: `Stats summarizes the confidence of every prediction made for an acronym,
including predictions that already have an outcome. Actual confidences are
not included. Unknown acronyms report zeros with a count of 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.tracker.ConfidenceStats(args[0])
			w := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(w, stats)
			}
			fmt.Fprint(w, a.table(w).RenderStats(args[0], stats))
			return nil
		},
	}
}
