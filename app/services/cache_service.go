package services

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bd-address-extractor/app/models"
)

type memoryEntry struct {
	result   *models.ExtractionResult
	storedAt time.Time
}

// CacheService in-process LRU cache with TTL expiry on read.
type CacheService struct {
	entries *lru.Cache[string, memoryEntry]
	ttl     time.Duration

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewCacheService builds an in-memory cache holding at most maxEntries
// results for at most ttl each.
func NewCacheService(maxEntries int, ttl time.Duration) (*CacheService, error) {
	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &CacheService{entries: entries, ttl: ttl}, nil
}

// Get returns a clone so callers can never mutate the stored entry.
func (cs *CacheService) Get(ctx context.Context, key string) (*models.ExtractionResult, bool, error) {
	entry, ok := cs.entries.Get(key)
	if ok && time.Since(entry.storedAt) > cs.ttl {
		cs.entries.Remove(key)
		ok = false
	}

	cs.mu.Lock()
	if ok {
		cs.hits++
	} else {
		cs.misses++
	}
	cs.mu.Unlock()

	if !ok {
		return nil, false, nil
	}
	return entry.result.Clone(), true, nil
}

func (cs *CacheService) Set(ctx context.Context, key string, result *models.ExtractionResult) error {
	cs.entries.Add(key, memoryEntry{result: result.Clone(), storedAt: time.Now()})
	return nil
}

func (cs *CacheService) Delete(ctx context.Context, key string) error {
	cs.entries.Remove(key)
	return nil
}

func (cs *CacheService) Clear(ctx context.Context) error {
	cs.entries.Purge()
	return nil
}

func (cs *CacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	cs.mu.Lock()
	hits, misses := cs.hits, cs.misses
	cs.mu.Unlock()

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(cs.entries.Len()),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

func (cs *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	entry, ok := cs.entries.Peek(key)
	if !ok {
		return false, nil
	}
	if time.Since(entry.storedAt) > cs.ttl {
		cs.entries.Remove(key)
		return false, nil
	}
	return true, nil
}

func (cs *CacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	entry, ok := cs.entries.Peek(key)
	if !ok {
		return 0, nil
	}
	remaining := cs.ttl - time.Since(entry.storedAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// Close no-op for the in-memory backend.
func (cs *CacheService) Close() error {
	return nil
}
