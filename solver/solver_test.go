package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/mlatu/beesolver/alphabet"
)

func TestSolveVoltage(t *testing.T) {
	is := is.New(t)
	words := []string{"voltage", "vote"}
	res, err := Solve(context.Background(), words, "oavtle", "g", "4", Options{})
	is.NoErr(err)
	is.Equal(res.Alphabet, "oavtleg")
	is.Equal(res.MayUse, "oavtle")
	is.Equal(res.MustUse, "g")
	// "vote" has no g, so "voltage" is the only match and it is special:
	// 7 for length plus the 7-point bonus
	is.Equal(res.AllWords, []string{"voltage"})
	is.Equal(res.SpecialWords, []string{"voltage"})
	is.Equal(res.SpecialBonus, 7)
	is.Equal(res.MaxScore, 14)
	is.True(!res.Empty())
}

func TestSolveRangeShorthand(t *testing.T) {
	is := is.New(t)
	words := []string{"virtuosity", "voyeuristic"}
	res, err := Solve(context.Background(), words, "[a-i]", "oy[r-v]", "4", Options{})
	is.NoErr(err)
	is.Equal(res.MayUse, "abcdefghi")
	is.Equal(res.MustUse, "oyrstuv")
	is.Equal(res.AllWords, []string{"virtuosity", "voyeuristic"})
	// neither word covers the whole sixteen-letter alphabet
	is.Equal(len(res.SpecialWords), 0)
	is.Equal(res.SpecialBonus, 0)
	is.Equal(res.MaxScore, 10+11)
}

func TestSolveNoMatchesIsNotAnError(t *testing.T) {
	is := is.New(t)
	words := []string{"voltage", "vote", "gloat"}
	res, err := Solve(context.Background(), words, "oavtle", "z", "4", Options{})
	is.NoErr(err)
	is.True(res.Empty())
	is.Equal(res.MaxScore, 0)
	is.Equal(res.Alphabet, "oavtlez")
}

func TestSolveFatalInputs(t *testing.T) {
	words := []string{"voltage"}
	_, err := Solve(context.Background(), words, "", "g", "4", Options{})
	var emptyErr *alphabet.EmptyLetterSetError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, alphabet.SideMayUse, emptyErr.Side)

	_, err = Solve(context.Background(), words, "oavtle", "g", "all", Options{})
	assert.True(t, errors.Is(err, alphabet.ErrInvalidMinLength))
}

func TestSolveParallelOption(t *testing.T) {
	is := is.New(t)
	var words []string
	for i := 0; i < 200; i++ {
		words = append(words, "voltage", "vote", "gloat", "gavel")
	}
	serial, err := Solve(context.Background(), words, "oavtle", "g", "4", Options{})
	is.NoErr(err)
	parallel, err := Solve(context.Background(), words, "oavtle", "g", "4", Options{Parallel: true})
	is.NoErr(err)
	is.Equal(serial.AllWords, parallel.AllWords)
	is.Equal(serial.SpecialWords, parallel.SpecialWords)
	is.Equal(serial.MaxScore, parallel.MaxScore)
}

func TestGeneratePuzzle(t *testing.T) {
	is := is.New(t)
	words := []string{"voltage", "vote", "banana", "quizzed"}
	for i := 0; i < 20; i++ {
		p, err := GeneratePuzzle(words, 7)
		is.NoErr(err)
		// only "voltage" has exactly seven distinct letters
		combined := alphabet.Normalize(p.MayUse + p.MustUse)
		is.Equal(combined.Mask(), alphabet.Normalize("voltage").Mask())
		is.Equal(len(p.MustUse), 1)
		is.Equal(alphabet.Normalize(p.MayUse).Len(), 6)

		// the seed word itself must solve its own puzzle as a special
		res, err := Solve(context.Background(), words, p.MayUse, p.MustUse, "4", Options{})
		is.NoErr(err)
		is.Equal(res.SpecialWords, []string{"voltage"})
	}
}

func TestGeneratePuzzleNoCandidates(t *testing.T) {
	_, err := GeneratePuzzle([]string{"vote", "banana"}, 7)
	assert.Error(t, err)

	_, err = GeneratePuzzle([]string{"voltage"}, 1)
	assert.Error(t, err)

	_, err = GeneratePuzzle([]string{"voltage"}, 27)
	assert.Error(t, err)
}
