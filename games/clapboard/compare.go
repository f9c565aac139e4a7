/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"encoding/json"
	"math"
	"strings"
)

// Tier is the quality of one attribute of a guess, rendered as a color.
type Tier string

const (
	TierExact Tier = "green"
	TierNear  Tier = "yellow"
	TierFar   Tier = "red"
)

// Direction says whether the target value is above or below the guess.
type Direction string

const (
	DirectionNone   Direction = ""
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// MarshalJSON encodes DirectionNone as null.
func (d Direction) MarshalJSON() ([]byte, error) {
	if d == DirectionNone {
		return []byte("null"), nil
	}

	return json.Marshal(string(d))
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	*d = DirectionNone
	if s != nil {
		*d = Direction(*s)
	}

	return nil
}

type NumericOutcome[T int | float64] struct {
	Tier      Tier      `json:"color"`
	Direction Direction `json:"direction"`
	Value     T         `json:"value"`
}

type DirectorOutcome struct {
	Tier       Tier        `json:"color"`
	Value      string      `json:"value"`
	Similarity *Similarity `json:"similarity,omitempty"`
}

type ListOutcome struct {
	Tier  Tier     `json:"color"`
	Value []string `json:"value"`
}

// Feedback scores one guess against the target.
type Feedback struct {
	MovieTitle string                  `json:"movieTitle"`
	Year       NumericOutcome[int]     `json:"year"`
	Director   DirectorOutcome         `json:"director"`
	Genres     ListOutcome             `json:"genres"`
	Actors     ListOutcome             `json:"actors"`
	Rating     NumericOutcome[float64] `json:"rating"`
	Oscars     NumericOutcome[int]     `json:"oscars"`
}

// Tiers lists the outcome of every attribute, in display order.
func (f Feedback) Tiers() []Tier {
	return []Tier{f.Year.Tier, f.Director.Tier, f.Genres.Tier, f.Actors.Tier, f.Rating.Tier, f.Oscars.Tier}
}

// Compare scores guess against target. Director similarity is looked up in
// profiles whenever the directors differ.
func Compare(guess, target Movie, profiles ProfileSource) Feedback {
	return Feedback{
		MovieTitle: guess.Title,
		Year:       compareYear(guess.Year, target.Year),
		Director:   compareDirector(guess.Director, target.Director, profiles),
		Genres:     compareList(lowerAll(guess.Genres), lowerAll(target.Genres), guess.Genres),
		Actors:     compareList(guess.Actors, target.Actors, guess.Actors),
		Rating:     compareRating(guess.VoteAverage, target.VoteAverage),
		Oscars:     compareOscars(guess.OscarWins, target.OscarWins),
	}
}

func direction[T int | float64](guess, target T) Direction {
	switch {
	case guess == target:
		return DirectionNone
	case target > guess:
		return DirectionHigher
	default:
		return DirectionLower
	}
}

func compareYear(guess, target int) NumericOutcome[int] {
	tier := TierFar

	switch diff := abs(guess - target); {
	case diff == 0:
		tier = TierExact
	case diff <= 5:
		tier = TierNear
	}

	return NumericOutcome[int]{Tier: tier, Direction: direction(guess, target), Value: guess}
}

// compareRating accepts up to half a point as exact, unlike year and Oscars.
func compareRating(guess, target float64) NumericOutcome[float64] {
	tier := TierFar

	switch diff := math.Abs(guess - target); {
	case diff <= 0.5:
		tier = TierExact
	case diff <= 1.5:
		tier = TierNear
	}

	return NumericOutcome[float64]{Tier: tier, Direction: direction(guess, target), Value: guess}
}

func compareOscars(guess, target int) NumericOutcome[int] {
	tier := TierFar

	switch diff := abs(guess - target); {
	case diff == 0:
		tier = TierExact
	case diff <= 3:
		tier = TierNear
	}

	return NumericOutcome[int]{Tier: tier, Direction: direction(guess, target), Value: guess}
}

func compareDirector(guess, target string, profiles ProfileSource) DirectorOutcome {
	out := DirectorOutcome{Tier: TierExact, Value: guess}

	if sim, ok := DirectorSimilarity(profiles, guess, target); ok {
		out.Tier = TierFar
		out.Similarity = &sim
	}

	return out
}

// compareList tiers two normalized lists and reports the guessed list
// untouched: exact when the sets are equal, near on any overlap.
func compareList(guess, target, value []string) ListOutcome {
	guessSet, targetSet := NewSet(guess...), NewSet(target...)

	shared := len(guessSet.Intersect(targetSet))

	tier := TierFar
	switch {
	case guessSet.Len() == targetSet.Len() && shared == guessSet.Len():
		tier = TierExact
	case shared > 0:
		tier = TierNear
	}

	return ListOutcome{Tier: tier, Value: value}
}

func lowerAll(items []string) []string {
	lowered := make([]string, len(items))
	for i, item := range items {
		lowered[i] = strings.ToLower(item)
	}

	return lowered
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
