package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	a := NewSequence("acct-")
	b := NewSequence("acct-")

	assert.Equal(t, "acct-1", a.NewID())
	assert.Equal(t, "acct-2", a.NewID())
	assert.Equal(t, "acct-1", b.NewID())
}

func TestUUID(t *testing.T) {
	got := UUID{}.NewID()
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.NotEqual(t, got, UUID{}.NewID())
}

func TestULID_Monotonic(t *testing.T) {
	g := NewULID()

	prev := g.NewID()
	for i := 0; i < 100; i++ {
		next := g.NewID()
		_, err := ulid.Parse(next)
		require.NoError(t, err)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestNew(t *testing.T) {
	for _, f := range []Format{FormatUUID, FormatULID, FormatSequence} {
		g, err := New(f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, g.NewID())
	}

	_, err := New("snowflake")
	assert.Error(t, err)
}
