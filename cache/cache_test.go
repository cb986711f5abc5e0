package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/mlatu/beesolver/config"
)

func TestLoadOnlyOnce(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))

	calls := 0
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		calls++
		return []string{"voltage"}, nil
	}
	key := Key("wordlist", t.Name())
	obj1, err := Load(cfg, key, loader)
	is.NoErr(err)
	obj2, err := Load(cfg, key, loader)
	is.NoErr(err)
	is.Equal(calls, 1)
	is.Equal(obj1.([]string), obj2.([]string))
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))

	calls := 0
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}
	key := Key("wordlist", t.Name())
	_, err := Load(cfg, key, loader)
	is.True(err != nil)
	obj, err := Load(cfg, key, loader)
	is.NoErr(err)
	is.Equal(obj, "ok")
}

func TestKeyDistinguishesParts(t *testing.T) {
	is := is.New(t)
	is.True(Key("wordlist", "a", "b") != Key("wordlist", "ab"))
	is.True(Key("wordlist", "a") != Key("distribution", "a"))
	is.Equal(Key("wordlist", "a", "b"), Key("wordlist", "a", "b"))
}
