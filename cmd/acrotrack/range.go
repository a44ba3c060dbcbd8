// Range command lists an acronym's predictions made within a time window.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

func newRangeCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range <acronym>",
		Short: "List predictions made within a time window",
		Long: `Range lists an acronym's predictions whose timestamp falls between --from
and --to, both inclusive, in the order they were made. Times are RFC3339.
--from defaults to the beginning of time. --to defaults to now, or to the
acronym's latest prediction when the session dates one in the future.`,
		Example: `  acrotrack range E6 --from 2026-10-01T00:00:00Z --to 2026-10-08T00:00:00Z`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTimeFlag("from", from, time.Time{})
			if err != nil {
				return err
			}
			end, err := parseTimeFlag("to", to, a.defaultRangeEnd(args[0]))
			if err != nil {
				return err
			}
			if start.After(end) {
				return fmt.Errorf("%w: %s > %s", types.ErrInvalidTimeRange,
					start.Format(time.RFC3339), end.Format(time.RFC3339))
			}

			history := a.tracker.HistoryWithinDateRange(args[0], start, end)
			w := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(w, history)
			}
			fmt.Fprint(w, a.table(w).RenderHistory(history))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start (RFC3339, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "range end (RFC3339, inclusive)")
	return cmd
}

// defaultRangeEnd returns now, or the acronym's latest prediction time if
// that is later.
func (a *app) defaultRangeEnd(acronym string) time.Time {
	end := a.now()
	rec, ok := a.tracker.Record(acronym)
	if !ok {
		return end
	}
	for _, p := range rec.History {
		if p.Timestamp.After(end) {
			end = p.Timestamp
		}
	}
	return end
}

// parseTimeFlag parses an RFC3339 flag value, returning def when it is empty.
func parseTimeFlag(name, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}
