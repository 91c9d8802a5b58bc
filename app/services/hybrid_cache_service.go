package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2).
// Reads promote L2 hits into L1; writes go to both.
type HybridCacheService struct {
	local  *CacheService
	remote *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService wraps an existing local and remote cache.
func NewHybridCacheService(local *CacheService, remote *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{local: local, remote: remote, logger: logger}
}

func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*models.ExtractionResult, bool, error) {
	result, found, err := hcs.local.Get(ctx, key)
	if err == nil && found {
		return result, true, nil
	}

	result, found, err = hcs.remote.Get(ctx, key)
	if err != nil {
		hcs.logger.Warn("redis lookup failed", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	// promote to L1 off the request path
	promoted := result.Clone()
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hcs.local.Set(bgCtx, key, promoted); err != nil {
			hcs.logger.Warn("l1 promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()
	return result, true, nil
}

func (hcs *HybridCacheService) Set(ctx context.Context, key string, result *models.ExtractionResult) error {
	if err := hcs.local.Set(ctx, key, result); err != nil {
		hcs.logger.Warn("l1 set failed", zap.Error(err))
	}
	if err := hcs.remote.Set(ctx, key, result); err != nil {
		hcs.logger.Warn("redis set failed", zap.Error(err))
		return err
	}
	return nil
}

func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	errLocal := hcs.local.Delete(ctx, key)
	errRemote := hcs.remote.Delete(ctx, key)
	if errLocal != nil || errRemote != nil {
		return fmt.Errorf("delete errors: %v, %v", errLocal, errRemote)
	}
	return nil
}

func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	errLocal := hcs.local.Clear(ctx)
	errRemote := hcs.remote.Clear(ctx)
	if errLocal != nil || errRemote != nil {
		return fmt.Errorf("clear errors: %v, %v", errLocal, errRemote)
	}
	hcs.logger.Info("hybrid cache cleared")
	return nil
}

func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	localStats, errLocal := hcs.local.GetStats(ctx)
	remoteStats, errRemote := hcs.remote.GetStats(ctx)

	if errLocal != nil && errRemote != nil {
		return nil, fmt.Errorf("both cache tiers failed: %v, %v", errLocal, errRemote)
	}
	if errLocal != nil {
		return remoteStats, nil
	}
	if errRemote != nil {
		return localStats, nil
	}

	combined := &CacheStats{
		TotalHits:  localStats.TotalHits + remoteStats.TotalHits,
		TotalMiss:  localStats.TotalMiss + remoteStats.TotalMiss,
		TotalItems: localStats.TotalItems + remoteStats.TotalItems,
	}
	if total := combined.TotalHits + combined.TotalMiss; total > 0 {
		combined.HitRate = float64(combined.TotalHits) / float64(total)
	}
	return combined, nil
}

func (hcs *HybridCacheService) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := hcs.local.Exists(ctx, key)
	if err == nil && exists {
		return true, nil
	}
	return hcs.remote.Exists(ctx, key)
}

func (hcs *HybridCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return hcs.remote.GetTTL(ctx, key)
}

func (hcs *HybridCacheService) Close() error {
	errLocal := hcs.local.Close()
	errRemote := hcs.remote.Close()
	if errLocal != nil || errRemote != nil {
		return fmt.Errorf("close errors: %v, %v", errLocal, errRemote)
	}
	return nil
}
