package clapboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"hello world", 1794106052},
		{"2026-02-11-0", 302070045},
		{"2026-10-14-0", 528178217},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HashString(tt.in), "HashString(%q)", tt.in)
	}
}

func TestSelectIndex_Deterministic(t *testing.T) {
	t.Parallel()

	for round := range RoundsPerDay {
		assert.Equal(t, SelectIndex("2026-03-01", round, 97), SelectIndex("2026-03-01", round, 97))
	}

	want := []int{5, 4, 3, 2, 1}
	for round, idx := range want {
		assert.Equal(t, idx, SelectIndex("2026-02-11", round, 20))
	}
}

func TestSelectIndex_DistinctWithinDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, size := range []int{RoundsPerDay, 7, 20, 101, 1000} {
		for i := range 366 {
			dateKey := Today(day.AddDate(0, 0, i))

			seen := make(map[int]bool)
			for round := range RoundsPerDay {
				idx := SelectIndex(dateKey, round, size)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, size)
				require.False(t, seen[idx], "date %s size %d round %d reused index %d", dateKey, size, round, idx)
				seen[idx] = true
			}
		}
	}
}

func TestSelectIndex_SmallCatalogTerminates(t *testing.T) {
	t.Parallel()

	for round := range RoundsPerDay {
		assert.Equal(t, 0, SelectIndex("2026-02-11", round, 1))
	}

	for round := range RoundsPerDay {
		idx := SelectIndex("2026-02-11", round, 3)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}
}

func TestPuzzleNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		want int
	}{
		{"2026-02-11", 1},
		{"2026-02-12", 2},
		{"2026-03-13", 31},
		{"2027-02-11", 366},
		{"2026-02-10", 1},
		{"1999-12-31", 1},
	}

	for _, tt := range tests {
		got, err := PuzzleNumber(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.date)
	}
}

func TestPuzzleNumber_InvalidDate(t *testing.T) {
	t.Parallel()

	for _, date := range []string{"", "yesterday", "2026-13-01", "11/02/2026"} {
		_, err := PuzzleNumber(date)
		assert.ErrorIs(t, err, ErrInvalidInput, date)
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-8", -8*60*60)
	now := time.Date(2026, time.October, 13, 20, 0, 0, 0, loc)

	assert.Equal(t, "2026-10-14", Today(now))
}
