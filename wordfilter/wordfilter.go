// Package wordfilter selects the words of a word list that can be built
// from a puzzle's alphabet while containing every must-use letter.
package wordfilter

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/alphabet"
)

// ErrNoMatches is the distinguished empty outcome: the word list yielded no
// candidates at all. It is a normal terminal result, not a failure; callers
// should report an empty solve rather than abort.
var ErrNoMatches = errors.New("no matching words found")

// Results holds the selected words in word-list order. Specials is the
// subset of Matches whose letters cover the entire alphabet; every special
// also appears in Matches.
type Results struct {
	Matches  []string
	Specials []string
}

// classify reports whether a word is a match for the puzzle and, if so,
// whether it is special. A match is at least minLength long, uses only
// alphabet letters (repeats are free), and contains every must-use letter
// at least once. A special match additionally contains every alphabet
// letter at least once.
func classify(word string, alph, mustUse alphabet.LetterSet, minLength int) (match, special bool) {
	if len(word) < minLength {
		return false, false
	}
	mask, ok := alphabet.WordMask(word)
	if !ok {
		return false, false
	}
	if mask&^alph.Mask() != 0 {
		return false, false
	}
	if mask&mustUse.Mask() != mustUse.Mask() {
		return false, false
	}
	return true, mask&alph.Mask() == alph.Mask()
}

// Filter scans words in order and returns the matches and specials for the
// given alphabet and must-use set. Word-list order and duplicates are
// preserved. When nothing matches it returns ErrNoMatches.
func Filter(words []string, alph, mustUse alphabet.LetterSet, minLength int) (*Results, error) {
	res := &Results{}
	for _, w := range words {
		match, special := classify(w, alph, mustUse, minLength)
		if !match {
			continue
		}
		res.Matches = append(res.Matches, w)
		if special {
			res.Specials = append(res.Specials, w)
		}
	}
	log.Debug().
		Int("scanned", len(words)).
		Int("matches", len(res.Matches)).
		Int("specials", len(res.Specials)).
		Msg("filtered word list")
	if len(res.Matches) == 0 {
		return nil, ErrNoMatches
	}
	return res, nil
}
