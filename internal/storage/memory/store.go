package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/temporal-ledger/internal/interfaces"
	"github.com/sheikh-saqib/temporal-ledger/internal/record"
)

// MemoryRecordStore is an in-memory implementation of interfaces.RecordStore.
// Records are kept in id order and handed out as copies.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records []record.Record
}

// NewMemoryRecordStore creates an empty store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make([]record.Record, 0),
	}
}

// SaveRecord appends rec. Its id must be the next free id.
func (m *MemoryRecordStore) SaveRecord(ctx context.Context, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID != len(m.records) {
		return fmt.Errorf("record id %d out of order, next id is %d", rec.ID, len(m.records))
	}
	m.records = append(m.records, rec.Clone())
	return nil
}

func (m *MemoryRecordStore) GetRecord(ctx context.Context, id int) (record.Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id < 0 || id >= len(m.records) {
		return record.Record{}, false, nil
	}
	return m.records[id].Clone(), true, nil
}

func (m *MemoryRecordStore) CountRecords(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records), nil
}

// ListRecords returns a copy of every record in id order.
func (m *MemoryRecordStore) ListRecords(ctx context.Context) ([]record.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]record.Record, len(m.records))
	for i, rec := range m.records {
		copied[i] = rec.Clone()
	}
	return copied, nil
}

// Compile-time check: ensure MemoryRecordStore implements RecordStore interface
var _ interfaces.RecordStore = (*MemoryRecordStore)(nil)
