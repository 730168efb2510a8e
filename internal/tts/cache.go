package tts

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Cache is a thread-safe in-memory cache for synthesized audio, keyed
// by sha256(voice + ":" + text) so a voice change causes misses until
// the voice is switched back. Nothing is persisted.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	hits    int64
	misses  int64
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) Get(voice, text string) ([]byte, bool) {
	key := hashKey(voice, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

func (c *Cache) Put(voice, text string, audio []byte) {
	key := hashKey(voice, text)

	c.mu.Lock()
	c.entries[key] = audio
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func hashKey(voice, text string) string {
	h := sha256.Sum256([]byte(voice + ":" + text))
	return hex.EncodeToString(h[:])
}
