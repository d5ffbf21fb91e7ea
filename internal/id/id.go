// Package id mints identifiers for ledgers and accounts. Generators are
// passed to whoever needs them; there is no package-level counter.
package id

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator returns a fresh identifier on every call.
type Generator interface {
	NewID() string
}

// Format selects a Generator implementation.
type Format string

const (
	FormatUUID     Format = "uuid"
	FormatULID     Format = "ulid"
	FormatSequence Format = "seq"
)

// New returns a generator for format.
func New(format Format) (Generator, error) {
	switch format {
	case FormatUUID:
		return UUID{}, nil
	case FormatULID:
		return NewULID(), nil
	case FormatSequence:
		return NewSequence(""), nil
	default:
		return nil, fmt.Errorf("unsupported id format: %s", format)
	}
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.New().String()
}

// ULID generates lexically sortable ids with monotonic entropy.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// Sequence yields prefix1, prefix2, ... and is meant for deterministic runs
// and tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	return s.prefix + strconv.FormatUint(s.next, 10)
}
