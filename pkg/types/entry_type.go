package types

import (
	"errors"
	"fmt"
)

// EntryType selects which predictions a history query returns.
type EntryType string

// History filters. Any other value is treated as EntryAll by the tracker.
const (
	EntryAll       EntryType = "all"
	EntryPredicted EntryType = "predicted"
)

// ErrInvalidEntryType is returned by ParseEntryType for unrecognized filters.
var ErrInvalidEntryType = errors.New("invalid entry type")

// ParseEntryType converts s into an EntryType. An empty string yields
// EntryAll. Unlike the tracker, which silently treats unknown filters as
// EntryAll, this rejects them.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case "", EntryAll:
		return EntryAll, nil
	case EntryPredicted:
		return EntryPredicted, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidEntryType, s, EntryAll, EntryPredicted)
	}
}

// Matches reports whether p belongs in a history filtered by e.
func (e EntryType) Matches(p *Prediction) bool {
	if e == EntryPredicted {
		return !p.Resolved()
	}
	return true
}
