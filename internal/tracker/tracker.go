// Package tracker records predictions per acronym, reconciles them with
// observed outcomes, and reports confidence statistics.
//
// A Tracker keeps all state in memory for its own lifetime. It is not safe
// for concurrent use; callers sharing one across goroutines must guard it
// with a single lock.
package tracker

import (
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/acrotrack/internal/clock"
	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

// Tracker owns the record of every acronym it has seen.
type Tracker struct {
	records map[string]*types.Record
	clock   clock.Clock
	log     *logrus.Entry
	newID   func() string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source used to timestamp new predictions.
func WithClock(c clock.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *logrus.Entry) Option {
	return func(t *Tracker) { t.log = l }
}

// WithIDGenerator replaces the prediction ID generator.
func WithIDGenerator(f func() string) Option {
	return func(t *Tracker) { t.newID = f }
}

// New returns an empty Tracker. Without options it uses the wall clock,
// UUID v7 prediction IDs, and a logger that discards output.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		records: make(map[string]*types.Record),
		clock:   clock.System(),
		newID:   generateUUID,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		t.log = logrus.NewEntry(l)
	}
	return t
}

// generateUUID generates a new UUID v7 for prediction IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Add appends an unresolved prediction to the acronym's history, creating
// the record on first use. The category of an existing record is never
// changed. Returns a copy of the appended prediction.
func (t *Tracker) Add(acronym, category, predictedOutcome string, confidence float64) types.Prediction {
	rec, ok := t.records[acronym]
	if !ok {
		rec = &types.Record{Acronym: acronym, Category: category}
		t.records[acronym] = rec
	} else if rec.Category != category {
		t.log.WithFields(logrus.Fields{
			"acronym":  acronym,
			"category": rec.Category,
			"ignored":  category,
		}).Debug("keeping original category")
	}

	p := types.Prediction{
		PredictionID:     t.newID(),
		PredictedOutcome: predictedOutcome,
		Confidence:       confidence,
		Timestamp:        t.clock.Now(),
	}
	rec.History = append(rec.History, p)

	t.log.WithFields(logrus.Fields{
		"acronym":       acronym,
		"prediction_id": p.PredictionID,
		"confidence":    confidence,
	}).Debug("prediction added")
	return p.Clone()
}

// UpdateOutcome records the observed outcome on the acronym's most recent
// prediction, overwriting any earlier outcome. Unknown acronyms and empty
// histories are left untouched. Reports whether a prediction was updated.
func (t *Tracker) UpdateOutcome(acronym, actualOutcome string, actualConfidence float64) bool {
	rec, ok := t.records[acronym]
	if !ok {
		t.log.WithFields(logrus.Fields{"acronym": acronym, "reason": "unknown acronym"}).Debug("outcome ignored")
		return false
	}
	last := rec.Last()
	if last == nil {
		t.log.WithFields(logrus.Fields{"acronym": acronym, "reason": "empty history"}).Debug("outcome ignored")
		return false
	}

	last.Resolve(actualOutcome, actualConfidence)
	t.log.WithFields(logrus.Fields{
		"acronym":           acronym,
		"prediction_id":     last.PredictionID,
		"actual_confidence": actualConfidence,
	}).Debug("outcome recorded")
	return true
}

// History returns copies of the acronym's predictions in insertion order.
// EntryPredicted keeps only unresolved predictions; any other entry type
// returns everything. Unknown acronyms yield an empty slice.
func (t *Tracker) History(acronym string, entryType types.EntryType) []types.Prediction {
	return t.filter(acronym, entryType.Matches)
}

// HistoryWithinDateRange returns copies of the acronym's predictions whose
// timestamp lies in [start, end], in insertion order.
func (t *Tracker) HistoryWithinDateRange(acronym string, start, end time.Time) []types.Prediction {
	return t.filter(acronym, func(p *types.Prediction) bool {
		return !p.Timestamp.Before(start) && !p.Timestamp.After(end)
	})
}

func (t *Tracker) filter(acronym string, keep func(*types.Prediction) bool) []types.Prediction {
	out := []types.Prediction{}
	rec, ok := t.records[acronym]
	if !ok {
		return out
	}
	for i := range rec.History {
		if keep(&rec.History[i]) {
			out = append(out, rec.History[i].Clone())
		}
	}
	return out
}

// ConfidenceStats summarizes the predicted confidence of every prediction
// for the acronym, resolved or not. Actual confidences are not considered.
// Unknown acronyms and empty histories yield the zero value.
func (t *Tracker) ConfidenceStats(acronym string) types.ConfidenceStats {
	rec, ok := t.records[acronym]
	if !ok || len(rec.History) == 0 {
		return types.ConfidenceStats{}
	}

	stats := types.ConfidenceStats{
		Min:   rec.History[0].Confidence,
		Max:   rec.History[0].Confidence,
		Count: len(rec.History),
	}
	var sum float64
	for _, p := range rec.History {
		sum += p.Confidence
		if p.Confidence < stats.Min {
			stats.Min = p.Confidence
		}
		if p.Confidence > stats.Max {
			stats.Max = p.Confidence
		}
	}
	stats.Average = sum / float64(stats.Count)
	return stats
}

// Record returns a deep copy of the acronym's record.
func (t *Tracker) Record(acronym string) (types.Record, bool) {
	rec, ok := t.records[acronym]
	if !ok {
		return types.Record{}, false
	}
	return rec.Clone(), true
}

// Acronyms returns every tracked acronym in sorted order.
func (t *Tracker) Acronyms() []string {
	names := make([]string, 0, len(t.records))
	for name := range t.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
