package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemory(1 * time.Hour)
	defer cache.Close()
	ctx := context.Background()

	entry := &Entry{
		Channel:     "zhihu",
		DisplayName: "知乎",
		Keywords:    []string{"AI", "芯片"},
	}

	if err := cache.Set(ctx, entry); err != nil {
		t.Fatalf("Failed to set cache entry: %v", err)
	}

	retrieved, err := cache.Get(ctx, "zhihu")
	if err != nil {
		t.Fatalf("Failed to get cache entry: %v", err)
	}

	if retrieved.DisplayName != "知乎" {
		t.Errorf("Expected display name '知乎', got '%s'", retrieved.DisplayName)
	}

	if len(retrieved.Keywords) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(retrieved.Keywords))
	}

	exists, err := cache.Exists(ctx, "zhihu")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if !exists {
		t.Error("Expected channel to exist")
	}

	exists, err = cache.Exists(ctx, "weibo")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if exists {
		t.Error("Expected channel to not exist")
	}

	if _, err = cache.Get(ctx, "weibo"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	cache := NewMemory(50 * time.Millisecond)
	defer cache.Close()
	ctx := context.Background()

	entry := &Entry{Channel: "zhihu", DisplayName: "知乎", Keywords: []string{"AI"}}
	if err := cache.Set(ctx, entry); err != nil {
		t.Fatalf("Failed to set cache entry: %v", err)
	}

	exists, _ := cache.Exists(ctx, "zhihu")
	if !exists {
		t.Error("Expected channel to exist immediately after setting")
	}

	time.Sleep(100 * time.Millisecond)

	exists, _ = cache.Exists(ctx, "zhihu")
	if exists {
		t.Error("Expected channel to not exist after expiration")
	}

	if _, err := cache.Get(ctx, "zhihu"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after expiration, got %v", err)
	}

	if entries := cache.Entries(ctx); len(entries) != 0 {
		t.Errorf("Expected no live entries, got %d", len(entries))
	}
}

func TestMemoryCacheEntries(t *testing.T) {
	cache := NewMemory(1 * time.Hour)
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, &Entry{Channel: "zhihu", DisplayName: "知乎", Keywords: []string{"a"}})
	cache.Set(ctx, &Entry{Channel: "weibo", DisplayName: "微博", Keywords: []string{"b"}})

	entries := cache.Entries(ctx)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
}

func TestMemoryCacheStats(t *testing.T) {
	cache := NewMemory(1 * time.Hour)
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, &Entry{Channel: "zhihu", DisplayName: "知乎", Keywords: []string{"a"}})

	cache.Get(ctx, "zhihu")
	cache.Get(ctx, "missing")

	stats, err := cache.GetStats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}

	if stats.TotalEntries != 1 {
		t.Errorf("Expected 1 entry, got %d", stats.TotalEntries)
	}
	if stats.HitCount != 1 {
		t.Errorf("Expected 1 hit, got %d", stats.HitCount)
	}
	if stats.MissCount != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.MissCount)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("Expected hit rate 0.5, got %f", stats.HitRate)
	}
}

func TestMemoryCacheClear(t *testing.T) {
	cache := NewMemory(1 * time.Hour)
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, &Entry{Channel: "zhihu", DisplayName: "知乎", Keywords: []string{"a"}})

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	if _, err := cache.Get(ctx, "zhihu"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after clear, got %v", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	cache := NewMemory(1 * time.Hour)
	defer cache.Close()
	ctx := context.Background()

	cache.Set(ctx, &Entry{Channel: "zhihu", DisplayName: "知乎", Keywords: []string{"a"}})

	if err := cache.Delete(ctx, "zhihu"); err != nil {
		t.Fatalf("Failed to delete entry: %v", err)
	}

	if _, err := cache.Get(ctx, "zhihu"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after delete, got %v", err)
	}
}
