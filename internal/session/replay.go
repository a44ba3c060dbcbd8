package session

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/acrotrack/internal/clock"
	"github.com/mesh-intelligence/acrotrack/internal/tracker"
)

// Replay applies steps to t in order. Before each step the manual clock c
// (which t must be using) is set to the step's At time, or to now() when At
// is unset. Replay stops at the first invalid step.
func Replay(t *tracker.Tracker, c *clock.Manual, steps []Step, now func() time.Time) error {
	for i, s := range steps {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if s.At.IsZero() {
			c.Set(now())
		} else {
			c.Set(s.At)
		}

		switch s.Op {
		case OpAdd:
			t.Add(s.Acronym, s.Category, s.Predicted, s.Confidence)
		case OpUpdate:
			t.UpdateOutcome(s.Acronym, s.Actual, s.ActualConfidence)
		}
	}
	return nil
}
