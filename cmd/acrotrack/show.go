// Show command prints one acronym's record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <acronym>",
		Short: "Show an acronym's category and full history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, ok := a.tracker.Record(args[0])
			if !ok {
				return fmt.Errorf("acronym %q is not tracked", args[0])
			}

			w := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(w, rec)
			}
			fmt.Fprint(w, a.table(w).RenderRecord(rec))
			return nil
		},
	}
}
