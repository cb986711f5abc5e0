package wordlist

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/mlatu/beesolver/config"
)

func TestFromReader(t *testing.T) {
	is := is.New(t)
	in := "Voltage\nVOTE\n\n  gloat  \ngavel extra-field\n"
	words, err := FromReader(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(words, []string{"voltage", "vote", "gloat", "gavel"})
}

func TestFromFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("voltage\nvote\n"), 0o644))
	words, err := FromFile(path)
	is.NoErr(err)
	is.Equal(words, []string{"voltage", "vote"})

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}

func TestFromSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE words (word TEXT NOT NULL)")
	require.NoError(t, err)
	for _, w := range []string{"Voltage", "vote", " gloat "} {
		_, err = db.Exec("INSERT INTO words (word) VALUES (?)", w)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	words, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"voltage", "vote", "gloat"}, words)
}

func TestPath(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--data-path", "/opt/data"}))
	p, err := Path(cfg)
	is.NoErr(err)
	is.Equal(p, filepath.Join("/opt/data", "words.txt"))

	cfg.Set(config.KeyDialect, "alternate")
	p, err = Path(cfg)
	is.NoErr(err)
	is.Equal(p, filepath.Join("/opt/data", "words_alt.txt"))

	cfg.Set(config.KeyDialect, "klingon")
	_, err = Path(cfg)
	is.True(err != nil)

	cfg.Set(config.KeyWordListPath, "/tmp/my-words.txt")
	p, err = Path(cfg)
	is.NoErr(err)
	is.Equal(p, "/tmp/my-words.txt")
}

func TestLoadCaches(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("voltage\n"), 0o644))

	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--word-list-path", path}))

	first, err := Load(cfg)
	is.NoErr(err)
	is.Equal(first, []string{"voltage"})

	// rewrite the file; the cached copy should still be served
	is.NoErr(os.WriteFile(path, []byte("vote\n"), 0o644))
	second, err := Load(cfg)
	is.NoErr(err)
	is.Equal(second, []string{"voltage"})
}
