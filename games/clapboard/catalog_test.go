package clapboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog(strings.NewReader(`[
		{"id": 1, "title": "One", "year": 2001, "director": "D", "genres": ["Drama"], "actors": ["A"],
		 "voteAverage": 7.1, "oscarWins": 2, "watchProviders": {"US": {"providers": [{"name": "N", "logoPath": "/n.jpg"}]}}},
		{"id": 2, "title": "Two", "year": 2002, "director": "E", "genres": [], "actors": [], "watchProviders": {}}
	]`))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"One", "Two"}, c.Titles())

	one := c.At(0)
	assert.Equal(t, 7.1, one.VoteAverage)
	assert.Equal(t, 2, one.OscarWins)
	require.Contains(t, one.WatchProviders, "US")
	assert.Equal(t, "N", one.WatchProviders["US"].Providers[0].Name)
}

func TestLoadCatalog_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = LoadCatalog(strings.NewReader(`{"title": "not a list"}`))
	assert.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 9, "title": "Nine", "year": 1999, "director": "N"}]`), 0o644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Nine", c.At(0).Title)

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalog_Immutable(t *testing.T) {
	t.Parallel()

	movies := syntheticMovies()
	c := NewCatalog(movies)
	movies[0].Title = "changed"

	assert.Equal(t, "A", c.At(0).Title)

	out := c.Movies()
	out[1].Title = "changed"
	assert.Equal(t, "B", c.At(1).Title)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.GreaterOrEqual(t, c.Len(), RoundsPerDay)

	ids := make(map[int]bool)
	for _, m := range c.Movies() {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Director)
		assert.False(t, ids[m.ID], "duplicate id %d", m.ID)
		ids[m.ID] = true
	}
}
