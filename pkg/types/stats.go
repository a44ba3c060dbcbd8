package types

// ConfidenceStats summarizes the predicted confidences of an acronym's
// history. The zero value means no data; Count distinguishes that case from
// a history whose confidences are all legitimately zero.
type ConfidenceStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Empty reports whether the stats were computed over no predictions.
func (s ConfidenceStats) Empty() bool {
	return s.Count == 0
}
