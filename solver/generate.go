package solver

import (
	"fmt"
	"math/bits"

	"lukechampine.com/frand"

	"github.com/mlatu/beesolver/alphabet"
)

// DefaultPuzzleSize is the classic seven-letter puzzle.
const DefaultPuzzleSize = 7

// Puzzle is a generated letter puzzle: one required letter and the rest
// optional, all drawn from a single word of the list so at least one
// special word is guaranteed to exist.
type Puzzle struct {
	MayUse  string
	MustUse string
}

// GeneratePuzzle picks a random word with exactly size distinct letters
// and turns it into a puzzle: one of its letters (at random) must be used,
// the others may be. Errors if the list has no word with that many
// distinct letters.
func GeneratePuzzle(words []string, size int) (*Puzzle, error) {
	if size < 2 || size > 26 {
		return nil, fmt.Errorf("puzzle size %d out of range (2-26)", size)
	}
	candidates := []string{}
	for _, w := range words {
		mask, ok := alphabet.WordMask(w)
		if ok && bits.OnesCount32(mask) == size {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("word list has no word with %d distinct letters", size)
	}
	seed := candidates[frand.Intn(len(candidates))]
	letters := alphabet.Normalize(seed).Letters()
	mustIdx := frand.Intn(len(letters))

	var mayUse []byte
	for i, c := range letters {
		if i != mustIdx {
			mayUse = append(mayUse, c)
		}
	}
	return &Puzzle{MayUse: string(mayUse), MustUse: string(letters[mustIdx])}, nil
}
