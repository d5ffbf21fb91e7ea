package ledger

// JournalEntry is one line of the general journal: an event that changed the
// ledger together with the period it was applied at.
type JournalEntry struct {
	Seq       uint64 `json:"seq"` // starts at 1
	Timestamp uint64 `json:"timestamp"`
	Event     Event  `json:"event"`
}

func (l Ledger) recording(e Event, at uint64) []JournalEntry {
	entry := JournalEntry{
		Seq:       uint64(len(l.journal)) + 1,
		Timestamp: at,
		Event:     e,
	}
	return append(l.journal[:len(l.journal):len(l.journal)], entry)
}

// Journal returns a copy of the general journal in application order.
func (l Ledger) Journal() []JournalEntry {
	out := make([]JournalEntry, len(l.journal))
	copy(out, l.journal)
	return out
}

// JournalLen returns the number of events that changed the ledger. Comparing
// it before and after an application tells whether the events were applied.
func (l Ledger) JournalLen() int {
	return len(l.journal)
}
