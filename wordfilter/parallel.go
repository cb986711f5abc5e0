package wordfilter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mlatu/beesolver/alphabet"
)

// FilterParallel is Filter sharded across GOMAXPROCS workers. Each worker
// filters a contiguous slice of the word list and the shard results are
// concatenated in shard order, so the output order is identical to Filter's.
// The per-word predicate is stateless, which makes this safe.
func FilterParallel(ctx context.Context, words []string, alph, mustUse alphabet.LetterSet, minLength int) (*Results, error) {
	numShards := runtime.GOMAXPROCS(0)
	if numShards < 2 || len(words) < numShards {
		return Filter(words, alph, mustUse, minLength)
	}

	shards := make([]Results, numShards)
	chunk := (len(words) + numShards - 1) / numShards

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numShards; i++ {
		i := i // per-iteration copy: required for correctness while the go directive is below 1.22
		lo := i * chunk
		if lo > len(words) {
			lo = len(words)
		}
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, w := range words[lo:hi] {
				match, special := classify(w, alph, mustUse, minLength)
				if !match {
					continue
				}
				shards[i].Matches = append(shards[i].Matches, w)
				if special {
					shards[i].Specials = append(shards[i].Specials, w)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Results{}
	for i := range shards {
		res.Matches = append(res.Matches, shards[i].Matches...)
		res.Specials = append(res.Specials, shards[i].Specials...)
	}
	if len(res.Matches) == 0 {
		return nil, ErrNoMatches
	}
	return res, nil
}
