// Package patterncache caches compiled highlighters keyed by pattern source.
// The playground recompiles on every keystroke; backspacing through a
// pattern revisits prefixes that were already compiled moments ago.
package patterncache

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/glimmer/highlight"
	"github.com/zjrosen/glimmer/internal/log"
)

const DefaultExpiration = 5 * time.Minute
const DefaultCleanupInterval = 10 * time.Minute

// Cache is a TTL cache of compiled highlighters sharing one style.
type Cache struct {
	style lipgloss.Style
	cache *gocache.Cache
}

// New creates a pattern cache whose highlighters apply style to matches.
func New(style lipgloss.Style, defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		style: style,
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns a highlighter for pattern, compiling on a cache miss.
// Compilation errors are not cached; an invalid in-progress pattern may
// become valid one keystroke later.
func (c *Cache) Get(pattern string) (*highlight.Highlighter, error) {
	if value, found := c.cache.Get(pattern); found {
		if h, ok := value.(*highlight.Highlighter); ok {
			log.Debug(log.CatCache, "cache hit", "pattern", pattern)
			return h, nil
		}
		log.Error(log.CatCache, "wrong type assertion when getting value", "pattern", pattern)
	}

	h, err := highlight.New(pattern, c.style)
	if err != nil {
		return nil, err
	}
	c.cache.Set(pattern, h, gocache.DefaultExpiration)
	return h, nil
}

// Len returns the number of cached highlighters.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
