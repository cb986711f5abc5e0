package alphabet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// GameMinWordLength is the absolute floor for the minimum word length. A
// user-supplied minimum below this is clamped up, never honored.
const GameMinWordLength = 2

// Side names which letter expression a normalization error refers to.
type Side string

const (
	SideMayUse  Side = "may-use"
	SideMustUse Side = "must-use"
)

// EmptyLetterSetError is returned when a letter expression normalizes to
// nothing. It is fatal; no dictionary scan happens after it.
type EmptyLetterSetError struct {
	Side Side
}

func (e *EmptyLetterSetError) Error() string {
	return fmt.Sprintf("%s letter set is empty after normalization", e.Side)
}

// ErrInvalidMinLength is returned when the minimum word length argument does
// not parse as a positive integer.
var ErrInvalidMinLength = errors.New("minimum word length must be a positive integer")

// expandRanges rewrites every [X-Y] token in s into the inclusive sequence
// of characters between X and Y. Direction is irrelevant: [a-d] and [d-a]
// both expand to abcd. Everything else passes through unchanged; stray
// brackets and non-letter expansion products are stripped later.
func expandRanges(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '[' && i+4 < len(s) && s[i+2] == '-' && s[i+4] == ']' {
			lo, hi := s[i+1], s[i+3]
			if lo > hi {
				lo, hi = hi, lo
			}
			for c := lo; c <= hi; c++ {
				sb.WriteByte(c)
			}
			i += 4
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Normalize turns a raw letter expression into a LetterSet: lower-case,
// expand [X-Y] ranges, strip everything outside a-z, and deduplicate
// preserving first-seen order.
func Normalize(raw string) LetterSet {
	expanded := expandRanges(strings.ToLower(raw))
	var ls LetterSet
	for i := 0; i < len(expanded); i++ {
		ls.Add(expanded[i])
	}
	return ls
}

// ParseMinLength parses the minimum word length argument. A value below
// GameMinWordLength is clamped up with a warning; a non-numeric or
// non-positive value is an error.
func ParseMinLength(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidMinLength, raw)
	}
	if n < GameMinWordLength {
		log.Warn().Int("requested", n).Int("game-minimum", GameMinWordLength).
			Msg("minimum word length below game minimum; clamping")
		n = GameMinWordLength
	}
	return n, nil
}

// Build normalizes the raw may-use and must-use expressions and the minimum
// word length. The returned alphabet is the deduplicated union, may-use
// letters first. Either side normalizing to an empty set is fatal.
func Build(rawMayUse, rawMustUse, rawMinLength string) (mayUse, mustUse, alph LetterSet, minLength int, err error) {
	minLength, err = ParseMinLength(rawMinLength)
	if err != nil {
		return
	}
	mayUse = Normalize(rawMayUse)
	if mayUse.Len() == 0 {
		err = &EmptyLetterSetError{Side: SideMayUse}
		return
	}
	mustUse = Normalize(rawMustUse)
	if mustUse.Len() == 0 {
		err = &EmptyLetterSetError{Side: SideMustUse}
		return
	}
	alph = mayUse.Union(mustUse)
	log.Debug().
		Str("may-use", mayUse.String()).
		Str("must-use", mustUse.String()).
		Str("alphabet", alph.String()).
		Int("min-word-length", minLength).
		Msg("built alphabet")
	return
}
