/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed movies.json
var defaultCatalog []byte

// Movie is a single catalog entry. Field names match the catalog JSON.
type Movie struct {
	ID             int                            `json:"id"`
	Title          string                         `json:"title"`
	Year           int                            `json:"year"`
	Director       string                         `json:"director"`
	Genres         []string                       `json:"genres"`
	Actors         []string                       `json:"actors"`
	Tagline        string                         `json:"tagline"`
	Overview       string                         `json:"overview"`
	PosterPath     string                         `json:"posterPath"`
	VoteAverage    float64                        `json:"voteAverage"`
	VoteCount      int                            `json:"voteCount,omitempty"`
	OscarWins      int                            `json:"oscarWins"`
	WatchProviders map[string]WatchProviderRegion `json:"watchProviders"`
}

type WatchProviderRegion struct {
	Link      string          `json:"link,omitempty"`
	Providers []WatchProvider `json:"providers"`
}

type WatchProvider struct {
	Name     string `json:"name"`
	LogoPath string `json:"logoPath"`
}

// Catalog is an immutable, ordered list of movies.
type Catalog struct {
	movies []Movie
}

func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{movies: make([]Movie, len(movies))}
	copy(c.movies, movies)

	return c
}

// LoadCatalog decodes a JSON array of movies.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var movies []Movie

	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidInput)
	}

	return &Catalog{movies: movies}, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCatalog(f)
}

// DefaultCatalog returns the sample catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// Movies returns a copy of the catalog contents.
func (c *Catalog) Movies() []Movie {
	movies := make([]Movie, len(c.movies))
	copy(movies, c.movies)

	return movies
}

// Titles lists every title in catalog order, for client-side autocomplete.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		titles = append(titles, m.Title)
	}

	return titles
}
