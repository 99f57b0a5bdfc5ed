package cache

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// Lookup keeps provider search results in memory so repeated queries skip the paid APIs.
// freecache is safe for concurrent use.
type Lookup struct {
	cache *freecache.Cache
	ttl   int
}

func NewLookup(sizeMB int, ttl time.Duration) *Lookup {
	if sizeMB <= 0 {
		sizeMB = 32
	}
	return &Lookup{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   int(ttl.Seconds()),
	}
}

// Key builds a cache key from the lookup kind and a normalized query.
func Key(kind, query string) []byte {
	return []byte(kind + "::" + strings.Join(strings.Fields(strings.ToLower(query)), " "))
}

// Get decodes a cached value into out. It reports false on miss or on undecodable entry.
func (l *Lookup) Get(key []byte, out any) bool {
	raw, err := l.cache.Get(key)
	if err != nil {
		return false
	}
	if err = sonic.Unmarshal(raw, out); err != nil {
		l.cache.Del(key)
		return false
	}
	return true
}

func (l *Lookup) Set(key []byte, value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	return l.cache.Set(key, raw, l.ttl)
}

func (l *Lookup) Len() int64 {
	return l.cache.EntryCount()
}
