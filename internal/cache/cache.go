// Package cache keeps parse results for re-uploaded files so identical
// content never hits the parsing service twice inside the ttl window.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// KeyPrefix namespaces every entry in the backing store so a bulk Clear only
// touches entries this service wrote.
const KeyPrefix = "prezlab_cache_"

// Entry is one cached value with its expiry bookkeeping.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	TTL       time.Duration   `json:"ttl"`
}

// Cache is a fixed-capacity TTL cache. Expired or over-capacity entries are
// evicted oldest-first. Mutations happen in request order only, but the lock
// keeps it safe under Go's concurrent handlers.
type Cache struct {
	mu       sync.Mutex
	items    map[string]Entry
	order    []string
	capacity int
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

func New(capacity int, ttl time.Duration, log zerolog.Logger) *Cache {
	return NewWithClock(capacity, ttl, time.Now, log)
}

// NewWithClock lets tests advance time without sleeping.
func NewWithClock(capacity int, ttl time.Duration, now func() time.Time, log zerolog.Logger) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		items:    make(map[string]Entry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      now,
		log:      log.With().Str("component", "cache").Logger(),
	}
}

// Fingerprint builds the cache key for a file: name, size and a simple
// rolling hash over the bytes. Cheap and deterministic; not cryptographic.
func Fingerprint(name string, data []byte) string {
	var h int32
	for _, b := range data {
		h = h<<5 - h + int32(b)
	}
	return fmt.Sprintf("%s_%d_%08x", name, len(data), uint32(h))
}

// Get returns the value stored under key if it has not expired.
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	full := KeyPrefix + key

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[full]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.CreatedAt) > entry.TTL {
		delete(c.items, full)
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value under key, evicting oldest entries when over capacity.
func (c *Cache) Set(key string, value json.RawMessage) {
	full := KeyPrefix + key
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[full]; !exists {
		c.order = append(c.order, full)
	}
	c.items[full] = Entry{Value: value, CreatedAt: now, TTL: c.ttl}
	c.compact(now)
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	full := KeyPrefix + key
	delete(c.items, full)
	for i, k := range c.order {
		if k == full {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear drops every entry in the namespace.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.items {
		if strings.HasPrefix(k, KeyPrefix) {
			delete(c.items, k)
		}
	}
	c.order = c.order[:0]
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) compact(now time.Time) {
	for len(c.order) > 0 {
		oldest := c.order[0]
		entry, ok := c.items[oldest]
		expired := ok && now.Sub(entry.CreatedAt) > entry.TTL
		if !ok || expired || len(c.items) > c.capacity {
			c.order = c.order[1:]
			delete(c.items, oldest)
			continue
		}
		break
	}
}

// Save persists the live entries as JSON.
func (c *Cache) Save(path string) error {
	c.mu.Lock()
	snapshot := make(map[string]Entry, len(c.items))
	for k, v := range c.items {
		snapshot[k] = v
	}
	c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Load restores entries from a previous Save. Missing file is not an error;
// expired entries are dropped on the way in.
func (c *Cache) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cache file: %w", err)
	}

	var snapshot map[string]Entry
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode cache file: %w", err)
	}

	now := c.now()

	kept := make([]string, 0, len(snapshot))
	for k, entry := range snapshot {
		if !strings.HasPrefix(k, KeyPrefix) {
			continue
		}
		if now.Sub(entry.CreatedAt) > entry.TTL {
			continue
		}
		kept = append(kept, k)
	}
	// Map iteration order is random; oldest-first eviction needs the restored
	// order to follow creation time.
	sort.Slice(kept, func(i, j int) bool {
		return snapshot[kept[i]].CreatedAt.Before(snapshot[kept[j]].CreatedAt)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range kept {
		if _, exists := c.items[k]; !exists {
			c.order = append(c.order, k)
		}
		c.items[k] = snapshot[k]
	}
	c.compact(now)
	c.log.Debug().Int("entries", len(c.items)).Msg("cache loaded")
	return nil
}
