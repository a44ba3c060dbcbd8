// Package acrotrack records predictions per acronym, reconciles them with
// observed outcomes, and reports confidence statistics.
//
// The tracker lives in internal/tracker; shared types are in pkg/types.
package acrotrack

// Version is the acrotrack release version.
const Version = "0.1.0"
