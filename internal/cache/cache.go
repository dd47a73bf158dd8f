package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCacheMiss is returned when a channel has no live cache entry.
var ErrCacheMiss = errors.New("cache miss")

// Entry is a cached keyword extraction for one channel.
type Entry struct {
	Channel     string    `json:"channel"`
	DisplayName string    `json:"display_name"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccessedAt  time.Time `json:"accessed_at"`
	AccessCount int       `json:"access_count"`
}

// Stats represents cache statistics
type Stats struct {
	TotalEntries   int       `json:"total_entries"`
	HitCount       int64     `json:"hit_count"`
	MissCount      int64     `json:"miss_count"`
	HitRate        float64   `json:"hit_rate"`
	OldestEntry    time.Time `json:"oldest_entry"`
	ExpiredEntries int       `json:"expired_entries"`
}

// Memory is an in-memory TTL cache of channel keyword extractions.
type Memory struct {
	entries   map[string]*Entry
	mutex     sync.RWMutex
	duration  time.Duration
	hitCount  int64
	missCount int64
	done      chan struct{}
}

// NewMemory creates an in-memory cache whose entries expire after the
// given duration.
func NewMemory(duration time.Duration) *Memory {
	cache := &Memory{
		entries:  make(map[string]*Entry),
		duration: duration,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go cache.cleanup()

	return cache
}

// Get retrieves a channel's entry from cache.
func (c *Memory) Get(ctx context.Context, channel string) (*Entry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[channel]
	if !exists {
		c.missCount++
		return nil, ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(entry.ExpiresAt) {
		delete(c.entries, channel)
		c.missCount++
		return nil, ErrCacheMiss
	}

	entry.AccessedAt = time.Now()
	entry.AccessCount++
	c.hitCount++

	return entry, nil
}

// Set stores a channel's entry in cache.
func (c *Memory) Set(ctx context.Context, entry *Entry) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry.CreatedAt = time.Now()
	entry.ExpiresAt = time.Now().Add(c.duration)
	entry.AccessedAt = time.Now()
	entry.AccessCount = 0

	c.entries[entry.Channel] = entry
	return nil
}

// Exists checks whether a channel has a live entry.
func (c *Memory) Exists(ctx context.Context, channel string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[channel]
	if !exists {
		return false, nil
	}

	return !time.Now().After(entry.ExpiresAt), nil
}

// Entries returns a snapshot of all live entries.
func (c *Memory) Entries(ctx context.Context) []Entry {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	now := time.Now()
	entries := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			continue
		}
		entries = append(entries, *entry)
	}

	return entries
}

// Delete removes a channel's entry from cache.
func (c *Memory) Delete(ctx context.Context, channel string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, channel)
	return nil
}

// Clear removes all entries from cache.
func (c *Memory) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]*Entry)
	c.hitCount = 0
	c.missCount = 0
	return nil
}

// GetStats returns cache statistics.
func (c *Memory) GetStats(ctx context.Context) (*Stats, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := &Stats{
		TotalEntries: len(c.entries),
		HitCount:     c.hitCount,
		MissCount:    c.missCount,
	}

	if c.hitCount+c.missCount > 0 {
		stats.HitRate = float64(c.hitCount) / float64(c.hitCount+c.missCount)
	}

	now := time.Now()
	for _, entry := range c.entries {
		if stats.OldestEntry.IsZero() || entry.CreatedAt.Before(stats.OldestEntry) {
			stats.OldestEntry = entry.CreatedAt
		}
		if now.After(entry.ExpiresAt) {
			stats.ExpiredEntries++
		}
	}

	return stats, nil
}

// Close stops the background cleanup goroutine.
func (c *Memory) Close() {
	close(c.done)
}

// cleanup removes expired entries periodically
func (c *Memory) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.cleanupExpired()
		}
	}
}

func (c *Memory) cleanupExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for channel, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, channel)
		}
	}
}
