/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Set is a string set that remembers insertion order.
type Set struct {
	items []string
	index map[string]struct{}
}

func NewSet(items ...string) Set {
	s := Set{index: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

func (s *Set) Add(item string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[item]; ok {
		return
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s Set) Has(item string) bool {
	_, ok := s.index[item]
	return ok
}

func (s Set) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order.
func (s Set) Items() []string {
	return slices.Clone(s.items)
}

// Intersect returns the members of s also in other, in the order of s.
func (s Set) Intersect(other Set) []string {
	shared := []string{}
	for _, item := range s.items {
		if other.Has(item) {
			shared = append(shared, item)
		}
	}

	return shared
}

// DirectorProfile aggregates every catalog movie by one director.
type DirectorProfile struct {
	Name       string
	Genres     Set // lowercased
	Actors     Set
	Regions    Set
	MedianYear int
	MovieCount int
}

// ProfileIndex maps lowercased director names to profiles.
type ProfileIndex map[string]DirectorProfile

// ProfileSource looks up director profiles by name, case-insensitively.
type ProfileSource interface {
	Profile(name string) (DirectorProfile, bool)
}

func (idx ProfileIndex) Profile(name string) (DirectorProfile, bool) {
	p, ok := idx[strings.ToLower(name)]
	return p, ok
}

// BuildProfileIndex aggregates movies by director. The result depends only
// on movies and their order.
func BuildProfileIndex(movies []Movie) ProfileIndex {
	years := make(map[string][]int)
	idx := make(ProfileIndex)

	for _, m := range movies {
		key := strings.ToLower(m.Director)

		p, ok := idx[key]
		if !ok {
			p = DirectorProfile{
				Name:    m.Director,
				Genres:  NewSet(),
				Actors:  NewSet(),
				Regions: NewSet(),
			}
		}

		for _, g := range m.Genres {
			p.Genres.Add(strings.ToLower(g))
		}

		for _, a := range m.Actors {
			p.Actors.Add(a)
		}

		regions := make([]string, 0, len(m.WatchProviders))
		for code := range m.WatchProviders {
			regions = append(regions, code)
		}
		slices.Sort(regions)

		for _, code := range regions {
			p.Regions.Add(code)
		}

		p.MovieCount++
		idx[key] = p
		years[key] = append(years[key], m.Year)
	}

	for key, p := range idx {
		p.MedianYear = median(years[key])
		idx[key] = p
	}

	return idx
}

// median of a non-empty list; even counts round the mean of the middle pair.
func median(values []int) int {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return int(math.Round(float64(sorted[mid-1]+sorted[mid]) / 2))
}

// Profiles owns a lazily built ProfileIndex. The first lookup builds it
// once; later lookups read the published index without locking.
type Profiles struct {
	mu     sync.Mutex
	movies []Movie
	index  atomic.Pointer[ProfileIndex]
}

func NewProfiles(movies []Movie) *Profiles {
	return &Profiles{movies: movies}
}

func (p *Profiles) Index() ProfileIndex {
	if idx := p.index.Load(); idx != nil {
		return *idx
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if idx := p.index.Load(); idx != nil {
		return *idx
	}

	idx := BuildProfileIndex(p.movies)
	p.index.Store(&idx)

	return idx
}

// Rebuild replaces the index with one built from movies.
func (p *Profiles) Rebuild(movies []Movie) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.movies = movies
	idx := BuildProfileIndex(movies)
	p.index.Store(&idx)
}

func (p *Profiles) Profile(name string) (DirectorProfile, bool) {
	return p.Index().Profile(name)
}
