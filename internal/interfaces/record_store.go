package interfaces

import (
	"context"

	"github.com/sheikh-saqib/temporal-ledger/internal/record"
)

// RecordStore keeps the finalized records of a historian. Ids are assigned by
// the historian in finalization order, starting at zero.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec record.Record) error
	GetRecord(ctx context.Context, id int) (record.Record, bool, error)
	CountRecords(ctx context.Context) (int, error)
	ListRecords(ctx context.Context) ([]record.Record, error)
}
