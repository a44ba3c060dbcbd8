// History command lists an acronym's predictions.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

func newHistoryCmd(a *app) *cobra.Command {
	var entryType string

	cmd := &cobra.Command{
		Use:   "history <acronym>",
		Short: "List an acronym's predictions",
		Long: `History lists an acronym's predictions in the order they were made.

With --type predicted only predictions still awaiting an outcome are shown.
The default comes from entry_type in config.yaml.`,
		Example: `  acrotrack history E6
  acrotrack history E6 --type predicted --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := a.cfg.EntryType
			if cmd.Flags().Changed("type") {
				raw = entryType
			}
			et, err := types.ParseEntryType(raw)
			if err != nil {
				return err
			}

			history := a.tracker.History(args[0], et)
			w := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(w, history)
			}
			fmt.Fprint(w, a.table(w).RenderHistory(history))
			return nil
		},
	}
	cmd.Flags().StringVar(&entryType, "type", "", "entries to show: all | predicted")
	return cmd
}
