package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIssuesULIDs(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Second)
	s := NewGenerator().New()
	assert.Len(t, s, 26)

	u, err := ulid.ParseStrict(s)
	require.NoError(t, err)
	assert.False(t, ulid.Time(u.Time()).Before(before.Truncate(time.Millisecond)))
}

func TestGeneratorMonotonicWithinMillisecond(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	g := NewSeeded(42, func() time.Time { return fixed })

	prev := g.New()
	seen := map[string]bool{prev: true}
	for i := 0; i < 1000; i++ {
		next := g.New()
		require.False(t, seen[next], "duplicate id %s", next)
		assert.Greater(t, next, prev)
		seen[next] = true
		prev = next
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := NewSeeded(7, func() time.Time { return fixed })
	b := NewSeeded(7, func() time.Time { return fixed })

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.New(), b.New())
	}
}
