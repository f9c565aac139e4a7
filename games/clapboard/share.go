/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package clapboard

import (
	"fmt"
	"strings"
)

var tierEmoji = map[Tier]string{
	TierExact: "\U0001F7E9",
	TierNear:  "\U0001F7E8",
	TierFar:   "\U0001F7E5",
}

// ShareText renders a spoiler-free result grid, one row per guess.
func ShareText(puzzleNumber int, guesses []Feedback, solved bool, url string) string {
	score := fmt.Sprintf("X/%d", MaxGuesses)
	if solved {
		score = fmt.Sprintf("%d/%d", len(guesses), MaxGuesses)
	}

	rows := make([]string, 0, len(guesses))
	for _, f := range guesses {
		var row strings.Builder
		for _, tier := range f.Tiers() {
			emoji, ok := tierEmoji[tier]
			if !ok {
				emoji = tierEmoji[TierFar]
			}
			row.WriteString(emoji)
		}
		rows = append(rows, row.String())
	}

	text := fmt.Sprintf("\U0001F3AC Clapboard #%d - %s\n\n%s", puzzleNumber, score, strings.Join(rows, "\n"))
	if url != "" {
		text += "\n\n" + url
	}

	return text
}
