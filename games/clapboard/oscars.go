/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"encoding/json"
	"fmt"
	"io"
)

// Nomination is one entry of an Academy Awards nominations dump.
type Nomination struct {
	Category string           `json:"category"`
	Year     string           `json:"year"`
	Nominees []string         `json:"nominees"`
	Movies   []NominatedMovie `json:"movies"`
	Won      bool             `json:"won"`
}

type NominatedMovie struct {
	Title  string `json:"title"`
	TMDBID int    `json:"tmdb_id"`
	IMDBID string `json:"imdb_id"`
}

func LoadNominations(r io.Reader) ([]Nomination, error) {
	var noms []Nomination

	if err := json.NewDecoder(r).Decode(&noms); err != nil {
		return nil, fmt.Errorf("decode nominations: %w", err)
	}

	return noms, nil
}

// EnrichOscarWins sets OscarWins on every movie to the number of winning
// nominations matched by TMDB id, and reports how many movies won at least
// once. movies is modified in place.
func EnrichOscarWins(movies []Movie, noms []Nomination) int {
	wins := make(map[int]int)

	for _, nom := range noms {
		if !nom.Won {
			continue
		}

		for _, m := range nom.Movies {
			if m.TMDBID != 0 {
				wins[m.TMDBID]++
			}
		}
	}

	enriched := 0
	for i := range movies {
		movies[i].OscarWins = wins[movies[i].ID]
		if movies[i].OscarWins > 0 {
			enriched++
		}
	}

	return enriched
}
