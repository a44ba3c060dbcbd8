package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/acrotrack/internal/clock"
	"github.com/mesh-intelligence/acrotrack/internal/tracker"
	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

const yamlSession = `steps:
  - op: add
    acronym: E6
    category: Energy
    predicted: Increase in renewable energy adoption
    confidence: 0.85
    at: 2026-10-01T08:00:00Z
  - op: update
    acronym: E6
    actual: Increase in solar energy adoption
    actual_confidence: 0.9
  - op: add
    acronym: E6
    category: Energy
    predicted: Grid storage expands
    confidence: 0.6
    at: 2026-10-03T08:00:00Z
`

const jsonlSession = `{"op":"add","acronym":"W3","category":"Web","predicted":"More static sites","confidence":0.4}

this line is not json
{"op":"add","acronym":"W3","category":"Web","predicted":"Fewer frameworks","confidence":0.2,"at":"2026-10-02T00:00:00Z"}
{"op":"update","acronym":"W3","actual":"More frameworks","actual_confidence":0.95}
`

// discardLog returns a logger that drops everything.
func discardLog() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	steps, err := Load(writeFile(t, "session.yaml", yamlSession), discardLog())
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, OpAdd, steps[0].Op)
	assert.Equal(t, "E6", steps[0].Acronym)
	assert.Equal(t, "Energy", steps[0].Category)
	assert.Equal(t, 0.85, steps[0].Confidence)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), steps[0].At.UTC())

	assert.Equal(t, OpUpdate, steps[1].Op)
	assert.Equal(t, "Increase in solar energy adoption", steps[1].Actual)
	assert.Equal(t, 0.9, steps[1].ActualConfidence)
	assert.True(t, steps[1].At.IsZero())
}

func TestLoadJSONLSkipsBadLines(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	path := writeFile(t, "session.jsonl", jsonlSession)

	steps, err := Load(path, logger)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "More static sites", steps[0].Predicted)
	assert.Equal(t, "Fewer frameworks", steps[1].Predicted)
	assert.Equal(t, OpUpdate, steps[2].Op)

	entries := hook.AllEntries()
	require.Len(t, entries, 1, "blank lines are not reported")
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "skipping malformed session line", entries[0].Message)
	assert.Equal(t, path, entries[0].Data["file"])
	assert.Equal(t, 3, entries[0].Data["line"])
}

func TestLoadJSONLWarnsOnWrongFieldType(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	content := `{"op":"add","acronym":"W3","category":"Web","predicted":"x","confidence":0.4}
{"op":"update","acronym":"W3","actual":"y","actual_confidence":"high"}
`
	steps, err := Load(writeFile(t, "typo.jsonl", content), logger)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, OpAdd, steps[0].Op)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 2, entry.Data["line"])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "session.txt", "op: add"), discardLog())
	assert.ErrorIs(t, err, types.ErrSessionFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), discardLog())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(t.TempDir(), "missing.jsonl"), discardLog())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "broken.yml", "steps: [unterminated"), discardLog())
	assert.Error(t, err)
}

func TestStepValidate(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		wantErr error
	}{
		{name: "add", step: Step{Op: OpAdd, Acronym: "E6"}},
		{name: "update", step: Step{Op: OpUpdate, Acronym: "E6"}},
		{name: "unknown op", step: Step{Op: "delete", Acronym: "E6"}, wantErr: types.ErrUnknownStep},
		{name: "empty op", step: Step{Acronym: "E6"}, wantErr: types.ErrUnknownStep},
		{name: "missing acronym", step: Step{Op: OpAdd}, wantErr: types.ErrMissingAcronym},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReplay(t *testing.T) {
	steps, err := Load(writeFile(t, "session.yaml", yamlSession), discardLog())
	require.NoError(t, err)

	now := time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC)
	c := clock.NewManual(time.Time{})
	tr := tracker.New(tracker.WithClock(c))
	require.NoError(t, Replay(tr, c, steps, func() time.Time { return now }))

	history := tr.History("E6", types.EntryAll)
	require.Len(t, history, 2)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), history[0].Timestamp.UTC())
	require.True(t, history[0].Resolved())
	assert.Equal(t, "Increase in solar energy adoption", *history[0].ActualOutcome)
	assert.Equal(t, time.Date(2026, 10, 3, 8, 0, 0, 0, time.UTC), history[1].Timestamp.UTC())
	assert.False(t, history[1].Resolved())

	stats := tr.ConfidenceStats("E6")
	assert.InDelta(t, 0.725, stats.Average, 1e-9)
}

func TestReplayUsesNowWithoutTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	c := clock.NewManual(time.Time{})
	tr := tracker.New(tracker.WithClock(c))

	steps := []Step{{Op: OpAdd, Acronym: "AI", Category: "Tech", Predicted: "x", Confidence: 0.3}}
	require.NoError(t, Replay(tr, c, steps, func() time.Time { return now }))

	history := tr.History("AI", types.EntryAll)
	require.Len(t, history, 1)
	assert.Equal(t, now, history[0].Timestamp)
}

func TestReplayStopsAtInvalidStep(t *testing.T) {
	c := clock.NewManual(time.Time{})
	tr := tracker.New(tracker.WithClock(c))

	steps := []Step{
		{Op: OpAdd, Acronym: "AI", Category: "Tech", Predicted: "x", Confidence: 0.3},
		{Op: "purge", Acronym: "AI"},
		{Op: OpAdd, Acronym: "AI", Category: "Tech", Predicted: "y", Confidence: 0.4},
	}
	err := Replay(tr, c, steps, time.Now)
	require.ErrorIs(t, err, types.ErrUnknownStep)
	assert.Contains(t, err.Error(), "step 2")
	assert.Len(t, tr.History("AI", types.EntryAll), 1)
}
