// List command shows every tracked acronym.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked acronyms",
		Long: `List shows every acronym in the session with its category, number of
predictions, number still awaiting an outcome, and when it was last predicted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acronyms := a.tracker.Acronyms()
			records := make([]types.Record, 0, len(acronyms))
			for _, name := range acronyms {
				if rec, ok := a.tracker.Record(name); ok {
					records = append(records, rec)
				}
			}

			w := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(w, records)
			}
			fmt.Fprint(w, a.table(w).RenderRecords(records))
			return nil
		},
	}
}
