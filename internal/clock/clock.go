// Package clock provides the time source used to timestamp predictions.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

// Manual is a Clock whose time only changes when Set or Advance is called.
// The zero value reports the zero time.
type Manual struct {
	now time.Time
}

// NewManual returns a Manual clock reading t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the clock's current reading.
func (m *Manual) Now() time.Time {
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
