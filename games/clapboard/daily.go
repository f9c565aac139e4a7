/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf16"
)

const (
	// RoundsPerDay is the number of independent puzzles served per date.
	RoundsPerDay = 5

	dateLayout = "2006-01-02"
)

// Epoch is the date of puzzle #1.
var Epoch = time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC)

// HashString is a 32-bit polynomial rolling hash over UTF-16 code units,
// returned as an absolute value.
func HashString(s string) int64 {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = hash*31 + int32(c)
	}

	h := int64(hash)
	if h < 0 {
		h = -h
	}

	return h
}

func candidateIndex(dateKey string, round, size int) int {
	return int(HashString(dateKey+"-"+strconv.Itoa(round)) % int64(size))
}

// SelectIndex picks the catalog index for one round of one date. Indices
// taken by earlier rounds of the same date are recomputed and skipped by
// probing forward, so rounds never share a movie while size >= RoundsPerDay.
// Smaller catalogs repeat movies once every slot is taken.
func SelectIndex(dateKey string, round, size int) int {
	used := make(map[int]bool, round)

	probe := func(idx int) int {
		for range size {
			if !used[idx] {
				return idx
			}
			idx = (idx + 1) % size
		}
		return idx
	}

	for r := 0; r < round; r++ {
		used[probe(candidateIndex(dateKey, r, size))] = true
	}

	return probe(candidateIndex(dateKey, round, size))
}

// Today formats now as a date key in UTC.
func Today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}

// ParseDateKey validates a YYYY-MM-DD date key.
func ParseDateKey(dateKey string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, dateKey, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, dateKey)
	}

	return t, nil
}

// PuzzleNumber counts days since Epoch, starting at 1. Dates on or before
// Epoch are puzzle 1.
func PuzzleNumber(dateKey string) (int, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return 0, err
	}

	if !t.After(Epoch) {
		return 1, nil
	}

	return int(t.Sub(Epoch).Hours())/24 + 1, nil
}
