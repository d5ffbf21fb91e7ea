// Package simulation advances time period by period, asks a producer for the
// events of each period, applies them to the ledgers and hands every period
// over to a historian.
package simulation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/temporal-ledger/internal/historian"
	"github.com/sheikh-saqib/temporal-ledger/internal/ledger"
	"github.com/sheikh-saqib/temporal-ledger/internal/record"
)

// Producer decides which events happen in a period given the ledgers as they
// stand when the period opens.
type Producer interface {
	Events(period uint64, ledgers []ledger.Ledger) record.StepEvents
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc func(period uint64, ledgers []ledger.Ledger) record.StepEvents

func (f ProducerFunc) Events(period uint64, ledgers []ledger.Ledger) record.StepEvents {
	return f(period, ledgers)
}

// Recorder receives every period of a run. *historian.Historian implements it.
type Recorder interface {
	Process(ctx context.Context, step historian.Step) (record.Record, bool, error)
}

// Result is the outcome of one run.
type Result struct {
	Ledgers []ledger.Ledger // live state after the final period
	Record  record.Record
}

type Driver struct {
	recorder Recorder
	logger   *zap.Logger
	clock    Clock
}

func NewDriver(recorder Recorder, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{recorder: recorder, logger: logger}
}

// Run drives periods 0 through total. The ledger ids must stay the same for
// the whole run; events addressed to unknown ids are dropped by replay.
func (d *Driver) Run(ctx context.Context, ledgers []ledger.Ledger, total uint64, producer Producer) (Result, error) {
	d.clock.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		period := d.clock.Now()
		events := producer.Events(period, ledgers)
		rec, done, err := d.recorder.Process(ctx, historian.Step{
			Period:       period,
			TotalPeriods: total,
			Ledgers:      ledgers,
			Events:       events,
		})
		if err != nil {
			return Result{}, fmt.Errorf("process period %d: %w", period, err)
		}
		ledgers = ledger.ApplyEach(ledgers, events, period)

		d.logger.Debug("period processed",
			zap.Uint64("period", period),
			zap.Int("events", events.Count()),
		)

		if done {
			return Result{Ledgers: ledgers, Record: rec}, nil
		}
		if period >= total {
			return Result{}, fmt.Errorf("run reached period %d without finalizing", period)
		}
		d.clock.Advance()
	}
}
