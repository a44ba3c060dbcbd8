package types

// Record holds everything tracked for one acronym. Category is fixed by the
// first insertion; History is kept in insertion order.
type Record struct {
	Acronym  string       `json:"acronym"`
	Category string       `json:"category"`
	History  []Prediction `json:"history"`
}

// Last returns the most recent prediction, or nil when the history is empty.
func (r *Record) Last() *Prediction {
	if len(r.History) == 0 {
		return nil
	}
	return &r.History[len(r.History)-1]
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() Record {
	out := Record{
		Acronym:  r.Acronym,
		Category: r.Category,
		History:  make([]Prediction, len(r.History)),
	}
	for i := range r.History {
		out.History[i] = r.History[i].Clone()
	}
	return out
}
