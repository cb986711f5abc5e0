// Package solver ties the pipeline together: build the alphabet, filter
// the word list, score the matches, and hand back a single Result.
package solver

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/alphabet"
	"github.com/mlatu/beesolver/scoring"
	"github.com/mlatu/beesolver/wordfilter"
)

// Options tweak how a solve runs; the zero value is the plain serial path.
type Options struct {
	// Parallel shards the filter across workers. Same results, same order.
	Parallel bool
}

// Result is the full outcome of one solve. When no word qualifies, Empty
// reports true and the word lists are empty; that is a normal outcome.
type Result struct {
	Alphabet      string
	MayUse        string
	MustUse       string
	MinWordLength int
	SpecialWords  []string
	SpecialBonus  int
	AllWords      []string
	MaxScore      int
}

// Empty reports whether the solve found no usable words.
func (r *Result) Empty() bool {
	return len(r.AllWords) == 0
}

// Solve runs the whole pipeline over words with the raw user inputs.
// Normalization failures (empty letter sets, bad minimum length) abort
// before the word list is touched. A solve with zero matches is not an
// error; it comes back as an empty Result.
func Solve(ctx context.Context, words []string, rawMayUse, rawMustUse, rawMinLength string, opts Options) (*Result, error) {
	mayUse, mustUse, alph, minLength, err := alphabet.Build(rawMayUse, rawMustUse, rawMinLength)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Alphabet:      alph.String(),
		MayUse:        mayUse.String(),
		MustUse:       mustUse.String(),
		MinWordLength: minLength,
	}

	var filtered *wordfilter.Results
	if opts.Parallel {
		filtered, err = wordfilter.FilterParallel(ctx, words, alph, mustUse, minLength)
	} else {
		filtered, err = wordfilter.Filter(words, alph, mustUse, minLength)
	}
	if errors.Is(err, wordfilter.ErrNoMatches) {
		log.Debug().Str("alphabet", result.Alphabet).Msg("no matches for puzzle")
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	result.AllWords = filtered.Matches
	result.SpecialWords = filtered.Specials
	result.SpecialBonus = scoring.SpecialBonus * len(filtered.Specials)
	result.MaxScore = scoring.MaxScore(filtered, minLength)
	return result, nil
}
