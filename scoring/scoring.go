// Package scoring implements the game's scoring rule: minimum-length words
// are worth a single point, longer words are worth their length, and words
// covering the whole alphabet earn a flat bonus on top.
package scoring

import (
	"github.com/samber/lo"

	"github.com/mlatu/beesolver/wordfilter"
)

// SpecialBonus is the flat bonus awarded to a word that uses every letter
// of the alphabet, on top of its length score.
const SpecialBonus = 7

// LengthScore scores a word on length alone: 0 below the minimum, 1 at the
// minimum, its own length above it.
func LengthScore(word string, minLength int) int {
	switch {
	case len(word) < minLength:
		return 0
	case len(word) == minLength:
		return 1
	default:
		return len(word)
	}
}

// Score scores a single word. Special words get the bonus regardless of
// length.
func Score(word string, special bool, minLength int) int {
	s := LengthScore(word, minLength)
	if special {
		s += SpecialBonus
	}
	return s
}

// MaxScore computes the maximum achievable score for a filtered result set:
// the length scores of all matches plus one bonus per special word. Special
// words are matches too, so their length score is already in the first term.
func MaxScore(res *wordfilter.Results, minLength int) int {
	if res == nil {
		return 0
	}
	total := lo.SumBy(res.Matches, func(w string) int {
		return LengthScore(w, minLength)
	})
	return total + SpecialBonus*len(res.Specials)
}
