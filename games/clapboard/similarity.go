/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

type Label string

const (
	LabelHot  Label = "Hot"
	LabelWarm Label = "Warm"
	LabelCold Label = "Cold"
)

const (
	genreWeight  = 0.4
	actorWeight  = 0.3
	regionWeight = 0.2
	decadeWeight = 0.1

	maxReasons = 2
)

// Similarity describes how close two different directors are.
type Similarity struct {
	Score   float64  `json:"score"`
	Label   Label    `json:"label"`
	Reasons []string `json:"reasons"`
}

// Breakdown holds the unweighted component scores for two profiles.
type Breakdown struct {
	GenreScore   float64
	ActorScore   float64
	RegionScore  float64
	DecadeScore  float64
	SharedGenres []string
	SharedActors []string
}

func jaccard(a, b Set) float64 {
	if a.Len() == 0 && b.Len() == 0 {
		return 0
	}

	shared := len(a.Intersect(b))

	return float64(shared) / float64(a.Len()+b.Len()-shared)
}

func sharedOverMax(a, b Set) float64 {
	larger := max(a.Len(), b.Len())
	if larger == 0 {
		return 0
	}

	return float64(len(a.Intersect(b))) / float64(larger)
}

func decadeProximity(yearA, yearB int) float64 {
	return 1 - math.Min(math.Abs(float64(yearA-yearB))/30, 1)
}

func ComputeBreakdown(a, b DirectorProfile) Breakdown {
	return Breakdown{
		GenreScore:   jaccard(a.Genres, b.Genres),
		ActorScore:   sharedOverMax(a.Actors, b.Actors),
		RegionScore:  jaccard(a.Regions, b.Regions),
		DecadeScore:  decadeProximity(a.MedianYear, b.MedianYear),
		SharedGenres: a.Genres.Intersect(b.Genres),
		SharedActors: a.Actors.Intersect(b.Actors),
	}
}

func (bd Breakdown) Score() float64 {
	return genreWeight*bd.GenreScore +
		actorWeight*bd.ActorScore +
		regionWeight*bd.RegionScore +
		decadeWeight*bd.DecadeScore
}

func labelFor(score float64) Label {
	switch {
	case score >= 0.5:
		return LabelHot
	case score >= 0.25:
		return LabelWarm
	default:
		return LabelCold
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)

	return strings.ToUpper(string(r[0])) + string(r[1:])
}

type factor struct {
	weighted float64
	text     func() string
}

// Reasons explains the strongest components, at most two, highest weighted
// contribution first.
func (bd Breakdown) Reasons() []string {
	factors := []factor{
		{genreWeight * bd.GenreScore, func() string {
			if len(bd.SharedGenres) == 0 {
				return ""
			}

			names := make([]string, len(bd.SharedGenres))
			for i, g := range bd.SharedGenres {
				names[i] = titleCase(g)
			}

			return "Both direct " + strings.Join(names, ", ")
		}},
		{actorWeight * bd.ActorScore, func() string {
			switch n := len(bd.SharedActors); {
			case n == 0:
				return ""
			case n <= 2:
				return "Share actor " + strings.Join(bd.SharedActors, " & ")
			default:
				return fmt.Sprintf("Share %d actors", n)
			}
		}},
		{regionWeight * bd.RegionScore, func() string {
			if bd.RegionScore < 0.1 {
				return ""
			}
			return "Available in similar regions"
		}},
		{decadeWeight * bd.DecadeScore, func() string {
			if bd.DecadeScore < 0.3 {
				return ""
			}
			return "Active in similar era"
		}},
	}

	slices.SortStableFunc(factors, func(a, b factor) int {
		switch {
		case a.weighted > b.weighted:
			return -1
		case a.weighted < b.weighted:
			return 1
		default:
			return 0
		}
	})

	reasons := []string{}
	for _, f := range factors {
		if len(reasons) >= maxReasons {
			break
		}

		if f.weighted <= 0 {
			continue
		}

		if text := f.text(); text != "" {
			reasons = append(reasons, text)
		}
	}

	return reasons
}

// DirectorSimilarity scores director a against director b. It returns false
// when both names are the same director, which is an exact match and never
// scored. Directors missing from profiles score 0.
func DirectorSimilarity(profiles ProfileSource, a, b string) (Similarity, bool) {
	if sameDirector(a, b) {
		return Similarity{}, false
	}

	pa, okA := profiles.Profile(a)
	pb, okB := profiles.Profile(b)
	if !okA || !okB {
		return Similarity{Score: 0, Label: LabelCold, Reasons: []string{}}, true
	}

	bd := ComputeBreakdown(pa, pb)
	score := math.Round(bd.Score()*1000) / 1000

	return Similarity{
		Score:   score,
		Label:   labelFor(score),
		Reasons: bd.Reasons(),
	}, true
}

func sameDirector(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
