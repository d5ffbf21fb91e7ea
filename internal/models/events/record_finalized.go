package events

import (
	"strconv"
	"time"
)

// RecordFinalized announces that a run has completed and its record is
// available for reconstruction queries.
type RecordFinalized struct {
	RecordID    int       `json:"record_id"`
	StartedAt   uint64    `json:"started_at"`
	CompletedAt uint64    `json:"completed_at"`
	Ledgers     int       `json:"ledgers"`
	Steps       int       `json:"steps"`
	Events      int       `json:"events"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Key partitions notifications by record.
func (e RecordFinalized) Key() string {
	return strconv.Itoa(e.RecordID)
}
