// Package output renders tracker records, histories and statistics as
// terminal tables.
//
// Tables use plain ASCII columns. Resolved and pending predictions are
// colored when color is enabled; see IsColorEnabled.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-isatty"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

// ANSI color codes for prediction status.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted to f.
// It checks that f is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Table renders histories and stats relative to a reference time.
type Table struct {
	Color bool
	Now   time.Time
}

// RenderHistory renders predictions in the order given.
func (t Table) RenderHistory(predictions []types.Prediction) string {
	if len(predictions) == 0 {
		return "No predictions found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-3s %-30s %-6s %-10s %-30s %-6s %s\n",
		"#", "Predicted", "Conf", "Status", "Actual", "Conf", "Recorded"))
	sb.WriteString(strings.Repeat("─", 104))
	sb.WriteString("\n")

	for i, p := range predictions {
		status, color := "pending", colorYellow
		actual, actualConf := "-", "-"
		if p.Resolved() {
			status, color = "resolved", colorGreen
			actual = *p.ActualOutcome
			if p.ActualConfidence != nil {
				actualConf = formatConfidence(*p.ActualConfidence)
			}
		}
		sb.WriteString(fmt.Sprintf("%-3d %-30s %-6s %s %-30s %-6s %s\n",
			i+1,
			truncate(p.PredictedOutcome, 30),
			formatConfidence(p.Confidence),
			t.paint(fmt.Sprintf("%-10s", status), color),
			truncate(actual, 30),
			actualConf,
			t.paint(t.relative(p.Timestamp), colorGray)))
	}
	return sb.String()
}

// RenderStats renders a confidence summary for one acronym.
func (t Table) RenderStats(acronym string, stats types.ConfidenceStats) string {
	if stats.Empty() {
		return fmt.Sprintf("No confidence data for %s.\n", acronym)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence for %s (%s)\n", acronym, english.Plural(stats.Count, "prediction", "predictions")))
	sb.WriteString(fmt.Sprintf("  %-8s %s\n", "Average", formatConfidence(stats.Average)))
	sb.WriteString(fmt.Sprintf("  %-8s %s\n", "Min", formatConfidence(stats.Min)))
	sb.WriteString(fmt.Sprintf("  %-8s %s\n", "Max", formatConfidence(stats.Max)))
	return sb.String()
}

// RenderRecords renders one summary row per record.
func (t Table) RenderRecords(records []types.Record) string {
	if len(records) == 0 {
		return "No acronyms tracked.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-20s %-7s %-7s %s\n",
		"Acronym", "Category", "Events", "Pending", "Last Prediction"))
	sb.WriteString(strings.Repeat("─", 70))
	sb.WriteString("\n")

	for i := range records {
		r := &records[i]
		pending := 0
		for j := range r.History {
			if !r.History[j].Resolved() {
				pending++
			}
		}
		last := "never"
		if p := r.Last(); p != nil {
			last = t.relative(p.Timestamp)
		}
		sb.WriteString(fmt.Sprintf("%-12s %-20s %-7d %-7d %s\n",
			truncate(r.Acronym, 12),
			truncate(r.Category, 20),
			len(r.History),
			pending,
			last))
	}
	return sb.String()
}

// RenderRecord renders a record's category followed by its full history.
func (t Table) RenderRecord(r types.Record) string {
	return fmt.Sprintf("%s (%s)\n\n%s", r.Acronym, r.Category, t.RenderHistory(r.History))
}

func (t Table) paint(s, color string) string {
	if !t.Color {
		return s
	}
	return color + s + colorReset
}

// relative formats ts relative to t.Now, falling back to an absolute date
// when no reference time is set.
func (t Table) relative(ts time.Time) string {
	if t.Now.IsZero() {
		return ts.Format("2006-01-02 15:04")
	}
	return humanize.RelTime(ts, t.Now, "ago", "from now")
}

func formatConfidence(c float64) string {
	return fmt.Sprintf("%.3g", c)
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
