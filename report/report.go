// Package report renders a solve Result onto a writer. It only formats;
// nothing downstream consumes its output.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/mlatu/beesolver/scoring"
	"github.com/mlatu/beesolver/solver"
)

// Options control which sections get printed.
type Options struct {
	// ShowSummary prints the alphabet / may-use / must-use header.
	ShowSummary bool
}

// Write renders res. An empty result prints a short notice instead of the
// word tables. The only failures are I/O errors on w.
func Write(w io.Writer, res *solver.Result, opts Options) error {
	if opts.ShowSummary {
		if err := writeSummary(w, res); err != nil {
			return err
		}
	}
	if res.Empty() {
		_, err := fmt.Fprintln(w, "no matching words found")
		return err
	}

	specialSet := lo.SliceToMap(res.SpecialWords, func(word string) (string, bool) {
		return word, true
	})

	if _, err := fmt.Fprintf(w, "special words (%d, bonus %d):\n",
		len(res.SpecialWords), res.SpecialBonus); err != nil {
		return err
	}
	if err := writeWordTable(w, res.SpecialWords, specialSet, res.MinWordLength); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nall words (%d):\n", len(res.AllWords)); err != nil {
		return err
	}
	if err := writeWordTable(w, res.AllWords, specialSet, res.MinWordLength); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nmax score: %d\n", res.MaxScore)
	return err
}

func writeSummary(w io.Writer, res *solver.Result) error {
	_, err := fmt.Fprintf(w, "alphabet: %s\nmay-use: %s\nmust-use: %s\nmin length: %d\n\n",
		res.Alphabet, res.MayUse, res.MustUse, res.MinWordLength)
	return err
}

// writeWordTable prints one word per row with its score; special words are
// starred, in the style of newspaper answer keys.
func writeWordTable(w io.Writer, words []string, specialSet map[string]bool, minLength int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, word := range words {
		special := specialSet[word]
		marker := ""
		if special {
			marker = "*"
		}
		fmt.Fprintf(tw, "  %s\t%d%s\t\n", word, scoring.Score(word, special, minLength), marker)
	}
	return tw.Flush()
}
