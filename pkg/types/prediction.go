package types

import "time"

// Prediction is one recorded forecast for an acronym, optionally annotated
// later with the observed outcome.
type Prediction struct {
	PredictionID     string    `json:"prediction_id"`               // UUID v7, generated on append.
	PredictedOutcome string    `json:"predicted_outcome"`           // Forecast text (required).
	Confidence       float64   `json:"confidence"`                  // Confidence of the forecast; no enforced range.
	ActualOutcome    *string   `json:"actual_outcome"`              // Nil until resolved.
	ActualConfidence *float64  `json:"actual_confidence,omitempty"` // Set together with ActualOutcome.
	Timestamp        time.Time `json:"timestamp"`                   // Append time; immutable.
}

// Resolved reports whether an actual outcome has been recorded.
func (p *Prediction) Resolved() bool {
	return p.ActualOutcome != nil
}

// Resolve records the observed outcome and its confidence, overwriting any
// previous values.
func (p *Prediction) Resolve(actualOutcome string, actualConfidence float64) {
	p.ActualOutcome = &actualOutcome
	p.ActualConfidence = &actualConfidence
}

// Clone returns a copy of p that shares no pointers with it.
func (p *Prediction) Clone() Prediction {
	out := *p
	if p.ActualOutcome != nil {
		v := *p.ActualOutcome
		out.ActualOutcome = &v
	}
	if p.ActualConfidence != nil {
		v := *p.ActualConfidence
		out.ActualConfidence = &v
	}
	return out
}
