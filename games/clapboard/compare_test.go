package clapboard

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_SelfIsExact(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	idx := BuildProfileIndex(catalog.Movies())

	for _, m := range catalog.Movies() {
		f := Compare(m, m, idx)

		want := Feedback{
			MovieTitle: m.Title,
			Year:       NumericOutcome[int]{Tier: TierExact, Value: m.Year},
			Director:   DirectorOutcome{Tier: TierExact, Value: m.Director},
			Genres:     ListOutcome{Tier: TierExact, Value: m.Genres},
			Actors:     ListOutcome{Tier: TierExact, Value: m.Actors},
			Rating:     NumericOutcome[float64]{Tier: TierExact, Value: m.VoteAverage},
			Oscars:     NumericOutcome[int]{Tier: TierExact, Value: m.OscarWins},
		}

		if diff := cmp.Diff(want, f); diff != "" {
			t.Errorf("Compare(%q, itself) mismatch (-want +got):\n%s", m.Title, diff)
		}
	}
}

func TestCompareYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		guess, target int
		tier          Tier
		dir           Direction
	}{
		{2000, 2000, TierExact, DirectionNone},
		{2000, 2005, TierNear, DirectionHigher},
		{2001, 2000, TierNear, DirectionLower},
		{2000, 2006, TierFar, DirectionHigher},
		{1990, 1950, TierFar, DirectionLower},
	}

	for _, tt := range tests {
		got := compareYear(tt.guess, tt.target)
		assert.Equal(t, tt.tier, got.Tier, "%d vs %d", tt.guess, tt.target)
		assert.Equal(t, tt.dir, got.Direction, "%d vs %d", tt.guess, tt.target)
		assert.Equal(t, tt.guess, got.Value)
	}
}

func TestCompareRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		guess, target float64
		tier          Tier
		dir           Direction
	}{
		{7.0, 7.0, TierExact, DirectionNone},
		{7.0, 7.4, TierExact, DirectionHigher},
		{7.5, 7.0, TierExact, DirectionLower},
		{7.0, 8.0, TierNear, DirectionHigher},
		{8.5, 7.0, TierNear, DirectionLower},
		{7.0, 8.6, TierFar, DirectionHigher},
	}

	for _, tt := range tests {
		got := compareRating(tt.guess, tt.target)
		assert.Equal(t, tt.tier, got.Tier, "%v vs %v", tt.guess, tt.target)
		assert.Equal(t, tt.dir, got.Direction, "%v vs %v", tt.guess, tt.target)
	}
}

func TestCompareOscars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TierExact, compareOscars(0, 0).Tier)
	assert.Equal(t, TierNear, compareOscars(1, 0).Tier)
	assert.Equal(t, TierNear, compareOscars(0, 3).Tier)
	assert.Equal(t, TierFar, compareOscars(0, 4).Tier)
	assert.Equal(t, DirectionHigher, compareOscars(0, 4).Direction)
	assert.Equal(t, DirectionLower, compareOscars(11, 4).Direction)
}

func TestCompare_Genres(t *testing.T) {
	t.Parallel()

	idx := ProfileIndex{}
	target := Movie{Genres: []string{"Drama", "Action"}}

	tests := []struct {
		guess []string
		tier  Tier
	}{
		{[]string{"action", "DRAMA"}, TierExact},
		{[]string{"Drama"}, TierNear},
		{[]string{"Drama", "Action", "Crime"}, TierNear},
		{[]string{"Comedy"}, TierFar},
	}

	for _, tt := range tests {
		got := Compare(Movie{Genres: tt.guess}, target, idx).Genres
		assert.Equal(t, tt.tier, got.Tier, "%v", tt.guess)
		assert.Equal(t, tt.guess, got.Value, "guessed list must come back untouched")
	}
}

func TestCompare_ActorsCaseSensitive(t *testing.T) {
	t.Parallel()

	idx := ProfileIndex{}
	target := Movie{Actors: []string{"Alice", "Bob"}}

	assert.Equal(t, TierExact, Compare(Movie{Actors: []string{"Bob", "Alice"}}, target, idx).Actors.Tier)
	assert.Equal(t, TierNear, Compare(Movie{Actors: []string{"Bob", "Carol"}}, target, idx).Actors.Tier)
	assert.Equal(t, TierFar, Compare(Movie{Actors: []string{"alice", "bob"}}, target, idx).Actors.Tier)
}

func TestCompare_Director(t *testing.T) {
	t.Parallel()

	movies := syntheticMovies()
	idx := BuildProfileIndex(movies)

	same := Compare(movies[0], Movie{Director: "DIR ONE"}, idx).Director
	assert.Equal(t, TierExact, same.Tier)
	assert.Nil(t, same.Similarity)

	diff := Compare(movies[2], movies[0], idx).Director
	assert.Equal(t, TierFar, diff.Tier)
	assert.Equal(t, "Dir Two", diff.Value)
	require.NotNil(t, diff.Similarity)
	assert.Equal(t, LabelCold, diff.Similarity.Label)
}

func TestFeedback_JSON(t *testing.T) {
	t.Parallel()

	movies := syntheticMovies()
	f := Compare(movies[0], movies[0], BuildProfileIndex(movies))

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var decoded struct {
		MovieTitle string         `json:"movieTitle"`
		Year       map[string]any `json:"year"`
		Director   map[string]any `json:"director"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, "A", decoded.MovieTitle)
	assert.Equal(t, "green", decoded.Year["color"])
	assert.Nil(t, decoded.Year["direction"])
	assert.Contains(t, decoded.Year, "direction")
	assert.NotContains(t, decoded.Director, "similarity")

	var back Feedback
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, DirectionNone, back.Year.Direction)
}
