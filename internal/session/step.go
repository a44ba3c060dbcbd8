// Package session loads scripted tracker sessions and replays them into a
// Tracker. A session file is read-only input; nothing is ever written back.
package session

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

// Step operations.
const (
	OpAdd    = "add"
	OpUpdate = "update"
)

// Step is one tracker call in a session.
type Step struct {
	Op               string    `json:"op" yaml:"op"`
	Acronym          string    `json:"acronym" yaml:"acronym"`
	Category         string    `json:"category,omitempty" yaml:"category,omitempty"`
	Predicted        string    `json:"predicted,omitempty" yaml:"predicted,omitempty"`
	Confidence       float64   `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Actual           string    `json:"actual,omitempty" yaml:"actual,omitempty"`
	ActualConfidence float64   `json:"actual_confidence,omitempty" yaml:"actual_confidence,omitempty"`
	At               time.Time `json:"at,omitzero" yaml:"at,omitempty"`
}

// Validate checks that the step names a known operation and an acronym.
func (s Step) Validate() error {
	switch s.Op {
	case OpAdd, OpUpdate:
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownStep, s.Op)
	}
	if s.Acronym == "" {
		return types.ErrMissingAcronym
	}
	return nil
}
