// Package wordlist loads line-oriented word lists for the solver. A list
// can come from a plain text file (one word per line, mixed case) or from
// a SQLite lexicon database; loaded lists are cached process-wide.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/cache"
	"github.com/mlatu/beesolver/config"
)

// File names for the known dialects, resolved under the data path.
var dialectFiles = map[string]string{
	"default":   "words.txt",
	"alternate": "words_alt.txt",
}

// Path resolves the word list location: an explicit override wins,
// otherwise the dialect picks a file under the data path.
func Path(cfg *config.Config) (string, error) {
	if p := cfg.GetString(config.KeyWordListPath); p != "" {
		return p, nil
	}
	dialect := cfg.GetString(config.KeyDialect)
	name, ok := dialectFiles[dialect]
	if !ok {
		return "", fmt.Errorf("unknown dialect %q", dialect)
	}
	return filepath.Join(cfg.GetString(config.KeyDataPath), name), nil
}

// FromReader scans one word per line, lower-casing each. Leading and
// trailing whitespace is dropped, as are empty lines; only the first field
// of a line counts, so annotated lists still load.
func FromReader(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		words = append(words, strings.ToLower(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FromFile loads a word list from a text file or, if the extension says
// so, a SQLite lexicon database.
func FromFile(path string) ([]string, error) {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return fromSQLite(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

// Load resolves and loads the configured word list, going through the
// global cache so repeated solves reuse the same slice.
func Load(cfg *config.Config) ([]string, error) {
	path, err := Path(cfg)
	if err != nil {
		return nil, err
	}
	key := cache.Key("wordlist", path)
	obj, err := cache.Load(cfg, key, func(cfg *config.Config, key string) (interface{}, error) {
		words, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("words", len(words)).Msg("loaded word list")
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return obj.([]string), nil
}
