// Package record holds the frozen output of one completed run: the ledgers as
// they stood when the run opened and every event applied afterwards, stamped
// with the period it was applied in. Any intermediate state is derived by
// replaying a prefix of the steps against the snapshot.
package record

import (
	"slices"

	"github.com/sheikh-saqib/temporal-ledger/internal/ledger"
	"github.com/sheikh-saqib/temporal-ledger/internal/models"
)

// StepEvents holds the events applied during one period, keyed by ledger id.
type StepEvents map[string][]ledger.Event

// Count returns the number of events across all ledgers.
func (s StepEvents) Count() int {
	n := 0
	for _, events := range s {
		n += len(events)
	}
	return n
}

// Clone copies the map and every event list.
func (s StepEvents) Clone() StepEvents {
	if s == nil {
		return nil
	}
	out := make(StepEvents, len(s))
	for id, events := range s {
		out[id] = slices.Clone(events)
	}
	return out
}

// Record is the queryable output of one run.
type Record struct {
	ID          int                          `json:"id"`
	StartedAt   uint64                       `json:"started_at"`
	CompletedAt uint64                       `json:"completed_at"`
	Snapshot    []ledger.Ledger              `json:"snapshot"`
	Steps       []models.Capture[StepEvents] `json:"steps"`
}

// Clone returns a copy of r that shares no mutable state with it. Ledgers
// are immutable values and are copied as is.
func (r Record) Clone() Record {
	r.Snapshot = slices.Clone(r.Snapshot)
	steps := make([]models.Capture[StepEvents], len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = models.Captured(step.Entity.Clone(), step.Timestamp)
	}
	r.Steps = steps
	return r
}

// EventCount returns the number of events captured over the whole run.
func (r Record) EventCount() int {
	n := 0
	for _, step := range r.Steps {
		n += step.Entity.Count()
	}
	return n
}

// LedgersAt reconstructs the ledgers as of period. At the opening period the
// snapshot is returned unchanged; otherwise every step stamped at or before
// period is replayed in timestamp order, each ledger receiving the events
// addressed to its id. Replaying is a pure fold, so repeated calls return
// equal ledgers.
func (r Record) LedgersAt(period uint64) []ledger.Ledger {
	working := slices.Clone(r.Snapshot)
	if period == r.StartedAt {
		return working
	}

	steps := slices.Clone(r.Steps)
	slices.SortStableFunc(steps, func(a, b models.Capture[StepEvents]) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})

	for _, step := range steps {
		if step.Timestamp > period {
			break
		}
		working = ledger.ApplyEach(working, step.Entity, step.Timestamp)
	}
	return working
}
