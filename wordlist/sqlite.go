package wordlist

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// fromSQLite reads every word out of a SQLite lexicon database. The schema
// is a single words(word TEXT) table, rowid order preserved so the list
// keeps its source ordering.
func fromSQLite(path string) ([]string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying lexicon db %s: %w", path, err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
