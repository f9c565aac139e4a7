/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

type HintKind string

const (
	HintDecade      HintKind = "decade"
	HintFirstLetter HintKind = "firstLetter"
	HintPosterCrop  HintKind = "posterCrop"
	HintOneActor    HintKind = "oneActor"
	HintTagline     HintKind = "tagline"

	posterBaseURL = "https://image.tmdb.org/t/p/w200"
)

var HintKinds = []HintKind{HintDecade, HintFirstLetter, HintPosterCrop, HintOneActor, HintTagline}

var leadingArticle = regexp.MustCompile(`(?i)^(the|a|an)\s+`)

type Hint struct {
	Kind  HintKind `json:"hintType"`
	Value string   `json:"value"`
}

func ParseHintKind(s string) (HintKind, error) {
	kind := HintKind(s)
	if !slices.Contains(HintKinds, kind) {
		return "", fmt.Errorf("%w: unknown hint type %q", ErrInvalidInput, s)
	}

	return kind, nil
}

// Hint reveals one attribute of the target for a round, read from the same
// target the guess endpoint scores against.
func (g *Game) Hint(dateKey string, round int, kind HintKind) (Hint, error) {
	if _, err := ParseHintKind(string(kind)); err != nil {
		return Hint{}, err
	}

	target, err := g.Target(dateKey, round)
	if err != nil {
		return Hint{}, err
	}

	return Hint{Kind: kind, Value: HintValue(target, kind)}, nil
}

func HintValue(m Movie, kind HintKind) string {
	switch kind {
	case HintDecade:
		return strconv.Itoa(m.Year/10*10) + "s"
	case HintFirstLetter:
		r := []rune(leadingArticle.ReplaceAllString(m.Title, ""))
		if len(r) == 0 {
			return ""
		}
		return strings.ToUpper(string(r[0]))
	case HintPosterCrop:
		if m.PosterPath == "" {
			return ""
		}
		return posterBaseURL + m.PosterPath
	case HintOneActor:
		if len(m.Actors) == 0 {
			return "Unknown"
		}
		return m.Actors[len(m.Actors)/2]
	case HintTagline:
		if m.Tagline == "" {
			return noTagline
		}
		return m.Tagline
	}

	return ""
}
