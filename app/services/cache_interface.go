package services

import (
	"context"
	"time"

	"github.com/bd-address-extractor/app/models"
)

// CacheStats aggregate cache counters.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService stores extraction results across requests. Keys carry the
// threshold fingerprint, so entries invalidate naturally on config change.
type ICacheService interface {
	// Get returns the cached result, whether it was found, and any backend
	// error. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) (*models.ExtractionResult, bool, error)

	// Set stores a result under key.
	Set(ctx context.Context, key string, result *models.ExtractionResult) error

	// Delete removes one entry.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// GetStats returns counters.
	GetStats(ctx context.Context) (*CacheStats, error)

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetTTL remaining lifetime of key; zero when absent or expired.
	GetTTL(ctx context.Context, key string) (time.Duration, error)

	// Close releases backend connections.
	Close() error
}
