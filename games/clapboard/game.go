/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"strings"
)

const (
	// MaxGuesses ends a round that has not been solved.
	MaxGuesses = 10

	taglineThreshold  = 4
	overviewThreshold = 7

	noTagline = "No tagline available."
)

// Categories names the scored attributes in display order.
var Categories = []string{"Year", "Director", "Genre", "Actors", "Rating", "Oscars"}

// Game answers every puzzle request for one catalog. It holds no player
// state; callers pass in what the client has recorded.
type Game struct {
	catalog  *Catalog
	profiles *Profiles
}

func New(catalog *Catalog) *Game {
	return &Game{
		catalog:  catalog,
		profiles: NewProfiles(catalog.movies),
	}
}

func (g *Game) Catalog() *Catalog {
	return g.catalog
}

func (g *Game) Profiles() *Profiles {
	return g.profiles
}

// Target returns the hidden movie for one round of dateKey.
func (g *Game) Target(dateKey string, round int) (Movie, error) {
	if round < 0 || round >= RoundsPerDay {
		return Movie{}, fmt.Errorf("%w: round %d outside 0-%d", ErrInvalidInput, round, RoundsPerDay-1)
	}

	if _, err := ParseDateKey(dateKey); err != nil {
		return Movie{}, err
	}

	return g.catalog.At(SelectIndex(dateKey, round, g.catalog.Len())), nil
}

func (g *Game) Resolve(text string) (Movie, error) {
	return Resolve(text, g.catalog.movies)
}

func (g *Game) Score(guess, target Movie) Feedback {
	return Compare(guess, target, g.profiles)
}

func (g *Game) DirectorSimilarity(a, b string) (Similarity, bool) {
	return DirectorSimilarity(g.profiles, a, b)
}

func (g *Game) Titles() []string {
	return g.catalog.Titles()
}

type Daily struct {
	PuzzleNumber int      `json:"puzzleNumber"`
	Date         string   `json:"date"`
	RoundsPerDay int      `json:"roundsPerDay"`
	Categories   []string `json:"categories"`
}

func (g *Game) Daily(dateKey string) (Daily, error) {
	n, err := PuzzleNumber(dateKey)
	if err != nil {
		return Daily{}, err
	}

	return Daily{
		PuzzleNumber: n,
		Date:         dateKey,
		RoundsPerDay: RoundsPerDay,
		Categories:   Categories,
	}, nil
}

type Lifelines struct {
	Tagline  string `json:"tagline,omitempty"`
	Overview string `json:"overview,omitempty"`
}

// GuessResult is the outcome of one guess. Answer is only set once the
// round is over.
type GuessResult struct {
	Feedback   Feedback  `json:"feedback"`
	GuessCount int       `json:"guessCount"`
	Solved     bool      `json:"solved"`
	GameOver   bool      `json:"gameOver"`
	Lifelines  Lifelines `json:"lifelines"`
	Answer     *Movie    `json:"answer,omitempty"`
}

// Guess scores text against the target of one round. priorGuesses is the
// number of guesses the client has already made this round.
func (g *Game) Guess(dateKey string, round int, text string, priorGuesses int) (GuessResult, error) {
	target, err := g.Target(dateKey, round)
	if err != nil {
		return GuessResult{}, err
	}

	guessed, err := g.Resolve(text)
	if err != nil {
		return GuessResult{}, err
	}

	count := max(priorGuesses, 0) + 1
	solved := strings.ToLower(guessed.Title) == strings.ToLower(target.Title)

	result := GuessResult{
		Feedback:   g.Score(guessed, target),
		GuessCount: count,
		Solved:     solved,
		GameOver:   solved || count >= MaxGuesses,
	}

	if !solved && count >= taglineThreshold {
		result.Lifelines.Tagline = target.Tagline
		if result.Lifelines.Tagline == "" {
			result.Lifelines.Tagline = noTagline
		}
	}

	if !solved && count >= overviewThreshold {
		result.Lifelines.Overview = target.Overview
	}

	if result.GameOver {
		result.Answer = &target
	}

	return result, nil
}
