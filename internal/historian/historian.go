// Package historian captures the ledgers and events of every period of a run
// and, when the run completes, freezes them into a record that can answer
// what any ledger looked like at any earlier period.
package historian

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/temporal-ledger/internal/interfaces"
	"github.com/sheikh-saqib/temporal-ledger/internal/ledger"
	"github.com/sheikh-saqib/temporal-ledger/internal/models"
	"github.com/sheikh-saqib/temporal-ledger/internal/models/events"
	"github.com/sheikh-saqib/temporal-ledger/internal/record"
	"github.com/sheikh-saqib/temporal-ledger/internal/storage/memory"
)

// DefaultTopic is the topic RecordFinalized notifications are published to.
const DefaultTopic = "ledger.record_finalized"

// Step is what the driver hands over at the end of each period: the ledgers
// the period's events were applied to, and those events keyed by ledger id.
type Step struct {
	Period       uint64
	TotalPeriods uint64
	Ledgers      []ledger.Ledger
	Events       record.StepEvents
}

type frame struct {
	ledgers []ledger.Ledger
	events  record.StepEvents
}

// Historian accumulates step captures and finalizes them into records.
// Process must be called from a single goroutine; record queries may run
// concurrently with it when the store allows.
type Historian struct {
	store     interfaces.RecordStore
	publisher interfaces.EventPublisher
	topic     string
	logger    *zap.Logger
	now       func() time.Time

	buffer []models.Capture[frame]
}

// Option configures a Historian.
type Option func(*Historian)

// WithStore replaces the default in-memory record store.
func WithStore(store interfaces.RecordStore) Option {
	return func(h *Historian) { h.store = store }
}

// WithPublisher announces every finalized record on topic.
func WithPublisher(publisher interfaces.EventPublisher, topic string) Option {
	return func(h *Historian) {
		h.publisher = publisher
		h.topic = topic
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(h *Historian) { h.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(h *Historian) { h.now = now }
}

// New returns a Historian with an empty buffer.
func New(opts ...Option) *Historian {
	h := &Historian{
		store:  memory.NewMemoryRecordStore(),
		topic:  DefaultTopic,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Process buffers a capture of step. When step.Period equals
// step.TotalPeriods the run is finalized: the buffer becomes a record stored
// under the next handle, the buffer is reset and the record is returned with
// true. If storing fails the capture of step is dropped again so the call can
// be retried.
func (h *Historian) Process(ctx context.Context, step Step) (record.Record, bool, error) {
	h.buffer = append(h.buffer, models.Captured(frame{
		ledgers: slices.Clone(step.Ledgers),
		events:  step.Events.Clone(),
	}, step.Period))

	if step.Period != step.TotalPeriods {
		return record.Record{}, false, nil
	}

	rec, err := h.finalize(ctx, step.Period)
	if err != nil {
		h.buffer = h.buffer[:len(h.buffer)-1]
		return record.Record{}, false, err
	}
	h.Reset()
	h.announce(ctx, rec)
	return rec, true, nil
}

func (h *Historian) finalize(ctx context.Context, completedAt uint64) (record.Record, error) {
	id, err := h.store.CountRecords(ctx)
	if err != nil {
		return record.Record{}, fmt.Errorf("count records: %w", err)
	}

	first := h.buffer[0]
	rec := record.Record{
		ID:          id,
		StartedAt:   first.Timestamp,
		CompletedAt: completedAt,
		Snapshot:    first.Entity.ledgers,
		Steps:       make([]models.Capture[record.StepEvents], len(h.buffer)),
	}
	for i, c := range h.buffer {
		rec.Steps[i] = models.Captured(c.Entity.events, c.Timestamp)
	}

	if err := h.store.SaveRecord(ctx, rec); err != nil {
		return record.Record{}, fmt.Errorf("save record %d: %w", id, err)
	}

	h.logger.Info("run finalized",
		zap.Int("record_id", rec.ID),
		zap.Uint64("started_at", rec.StartedAt),
		zap.Uint64("completed_at", rec.CompletedAt),
		zap.Int("ledgers", len(rec.Snapshot)),
		zap.Int("steps", len(rec.Steps)),
	)
	return rec, nil
}

func (h *Historian) announce(ctx context.Context, rec record.Record) {
	if h.publisher == nil {
		return
	}
	evt := events.RecordFinalized{
		RecordID:    rec.ID,
		StartedAt:   rec.StartedAt,
		CompletedAt: rec.CompletedAt,
		Ledgers:     len(rec.Snapshot),
		Steps:       len(rec.Steps),
		Events:      rec.EventCount(),
		OccurredAt:  h.now().UTC(),
	}
	if err := h.publisher.Publish(ctx, h.topic, evt); err != nil {
		h.logger.Warn("publish finalized record", zap.Int("record_id", rec.ID), zap.Error(err))
	}
}

// Reset drops the buffered captures without touching stored records.
func (h *Historian) Reset() {
	h.buffer = nil
}

// Buffered returns the number of captures awaiting finalization.
func (h *Historian) Buffered() int {
	return len(h.buffer)
}

// Record looks up a finalized record. Unknown ids report false.
func (h *Historian) Record(ctx context.Context, id int) (record.Record, bool, error) {
	rec, ok, err := h.store.GetRecord(ctx, id)
	if err != nil {
		return record.Record{}, false, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, ok, nil
}

// Records returns every finalized record in handle order.
func (h *Historian) Records(ctx context.Context) ([]record.Record, error) {
	recs, err := h.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// ReconstructedLedgers rebuilds the ledgers of record id as of period by
// replaying its captured events against its starting snapshot. Unknown ids
// report false.
func (h *Historian) ReconstructedLedgers(ctx context.Context, period uint64, id int) ([]ledger.Ledger, bool, error) {
	rec, ok, err := h.Record(ctx, id)
	if err != nil || !ok {
		return nil, false, err
	}
	return rec.LedgersAt(period), true, nil
}
