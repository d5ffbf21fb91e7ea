package models

// Capture pairs a value with the period it was produced in.
type Capture[T any] struct {
	Entity    T      `json:"entity"`
	Timestamp uint64 `json:"timestamp"`
}

// Captured stamps entity with timestamp at.
func Captured[T any](entity T, at uint64) Capture[T] {
	return Capture[T]{Entity: entity, Timestamp: at}
}
