package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_UniqueAndOrdered(t *testing.T) {
	const count = 100
	seen := make(map[ID]struct{}, count)

	var prev ID
	for range count {
		id := New()
		require.False(t, id.IsZero())
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}

		// Monotonic entropy keeps same-millisecond IDs sorted
		require.True(t, prev.String() < id.String())
		prev = id
	}
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	for _, bad := range []string{"", "   ", "not-a-ulid", "0123456789"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrInvalid, "input %q", bad)
	}
}

func TestTime(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id := NewAt(at)

	// ULID time resolution is milliseconds
	require.Equal(t, at.UnixMilli(), id.Time().UnixMilli())
	require.True(t, Zero.Time().IsZero())
}
