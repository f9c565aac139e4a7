/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeTitle lowercases a title, drops everything except ASCII letters,
// digits, underscores and whitespace, and collapses whitespace runs.
func NormalizeTitle(title string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// StripArticle removes one leading "the", "a" or "an" from a normalized title.
func StripArticle(normalized string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(normalized, article); ok {
			return strings.TrimSpace(rest)
		}
	}

	return normalized
}

// Resolve maps free text to a catalog entry. Tiers are tried in order
// (exact, article-insensitive, substring) and the first movie in catalog
// order satisfying a tier wins.
func Resolve(text string, movies []Movie) (Movie, error) {
	guess := NormalizeTitle(text)
	if guess == "" {
		return Movie{}, fmt.Errorf("%w: missing or invalid guess", ErrInvalidInput)
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = NormalizeTitle(m.Title)
	}

	for i, title := range titles {
		if title == guess {
			return movies[i], nil
		}
	}

	stripped := StripArticle(guess)
	for i, title := range titles {
		if StripArticle(title) == stripped {
			return movies[i], nil
		}
	}

	for i, title := range titles {
		if strings.Contains(title, guess) || strings.Contains(guess, title) {
			return movies[i], nil
		}
	}

	return Movie{}, fmt.Errorf("%w: %q", ErrNotFound, text)
}
