// Package cache holds large loaded objects, mainly word lists, so that
// repeated solves in one process (the interactive shell especially) do not
// re-read them from disk.
package cache

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/config"
)

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

// LoadFunc loads the object for a key on a cache miss.
type LoadFunc func(cfg *config.Config, key string) (interface{}, error)

var globalObjectCache = &cache{objects: make(map[string]interface{})}

// Key builds a stable cache key from its parts. The hash keeps keys short
// no matter how long the underlying paths are.
func Key(kind string, parts ...string) string {
	return fmt.Sprintf("%s:%x", kind, xxhash.Sum64String(strings.Join(parts, "\x00")))
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("cache hit")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("cache miss; loading")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load fetches the object for key, loading it with loadFunc on first use.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (interface{}, error) {
	return globalObjectCache.get(cfg, key, loadFunc)
}
