// Root command for the acrotrack CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/acrotrack"
	"github.com/mesh-intelligence/acrotrack/internal/clock"
	"github.com/mesh-intelligence/acrotrack/internal/output"
	"github.com/mesh-intelligence/acrotrack/internal/paths"
	"github.com/mesh-intelligence/acrotrack/internal/session"
	"github.com/mesh-intelligence/acrotrack/internal/tracker"
	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

// app holds the flag values and per-invocation state shared by subcommands.
type app struct {
	configDir string
	session   string
	logLevel  string
	jsonMode  bool

	now     func() time.Time
	cfg     types.Config
	log     *logrus.Logger
	tracker *tracker.Tracker
}

// newRootCmd builds the command tree. now is the time used for session steps
// without a timestamp, range defaults, and relative times in tables.
func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:   "acrotrack",
		Short: "Track predictions per acronym and reconcile them with outcomes",
		Long: `acrotrack replays a session of predictions and observed outcomes into an
in-memory tracker and answers queries about it: histories, date ranges and
confidence statistics. The session file is never modified.`,
		Version:           acrotrack.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.session, "session", "", "session file to replay (.yaml or .jsonl)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config log_level)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newRangeCmd(a))
	root.AddCommand(newStatsCmd(a))

	return root
}

// skipsSetup reports whether cmd runs without configuration or a session:
// version, help, and shell completion (including cobra's hidden
// __complete requests) at any depth.
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// setup loads configuration, builds the logger, and replays the session.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if skipsSetup(cmd) {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return asSysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.log, err = newLogger(cmd.ErrOrStderr(), level); err != nil {
		return err
	}

	sessionPath, err := paths.ResolveSessionFile(a.session, cfg.Session)
	if err != nil {
		return asSysError(fmt.Errorf("resolve session file: %w", err))
	}
	steps, err := session.Load(sessionPath, a.log)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	c := clock.NewManual(a.now())
	a.tracker = tracker.New(
		tracker.WithClock(c),
		tracker.WithLogger(a.log.WithField("session", sessionPath)),
	)
	if err := session.Replay(a.tracker, c, steps, a.now); err != nil {
		return fmt.Errorf("replay %s: %w", sessionPath, err)
	}
	a.log.WithFields(logrus.Fields{
		"session":  sessionPath,
		"steps":    len(steps),
		"acronyms": len(a.tracker.Acronyms()),
	}).Info("session replayed")
	return nil
}

// newLogger returns a logrus logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidLogLevel, level)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	return l, nil
}

// table returns a renderer for w, colored when w is a terminal.
func (a *app) table(w io.Writer) output.Table {
	color := false
	if f, ok := w.(*os.File); ok {
		color = output.IsColorEnabled(f)
	}
	return output.Table{Color: color, Now: a.now()}
}
